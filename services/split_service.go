//go:generate go run go.uber.org/mock/mockgen -source=split_service.go -destination=../mocks/mock_split_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"team-bot/auth"
	"team-bot/contract"
	"team-bot/domain"
	"team-bot/errors"
	"time"

	"github.com/google/uuid"
)

const DefaultMoveReason = "Team split"

type ISplitService interface {
	Split(ctx context.Context, cmd domain.SplitCommand, announcer contract.IAnnouncer) (domain.SplitResult, error)
}

// SplitService splits the lobby of one guild into two teams and moves every
// member to the channel of its team, one member at a time.
type SplitService struct {
	settings SettingsReader
	guild    contract.IGuild
	shuffler Shuffler
	reason   string
	log      *slog.Logger
}

// SettingsReader is the read side of the settings repository.
type SettingsReader interface {
	Settings() domain.Settings
}

type SplitOption func(*SplitService)

func WithShuffler(shuffler Shuffler) SplitOption {
	return func(s *SplitService) { s.shuffler = shuffler }
}

// WithMoveReason sets the reason attached to every move, shown in the
// platform's audit log.
func WithMoveReason(reason string) SplitOption {
	return func(s *SplitService) {
		if reason != "" {
			s.reason = reason
		}
	}
}

func NewSplitService(settings SettingsReader, guild contract.IGuild, log *slog.Logger, opts ...SplitOption) *SplitService {
	s := &SplitService{
		settings: settings,
		guild:    guild,
		shuffler: DefaultShuffler,
		reason:   DefaultMoveReason,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split checks the invoker and the settings, draws the teams, announces them
// and then moves every member.
// Authorization, configuration and roster size are checked before anything
// else happens: on failure no announcement is made and nobody is moved.
// Once the moves start, failures of single members are recorded in the
// result and the split goes on. A permission failure stops the remaining
// moves and is reported through SplitResult.Aborted, not as an error.
func (s *SplitService) Split(ctx context.Context, cmd domain.SplitCommand, announcer contract.IAnnouncer) (domain.SplitResult, error) {
	settings := s.settings.Settings()

	// 1. Invoker must be an administrator or a captain
	if err := auth.Authorize(cmd.Invoker, settings.CaptainRoleID); err != nil {
		return domain.SplitResult{}, err
	}

	// 2. Every channel must be configured and still exist
	if err := s.checkChannels(ctx, settings); err != nil {
		return domain.SplitResult{}, err
	}

	// 3. Roster from the command, or whoever sits in the lobby
	roster := cmd.Roster
	if roster == nil {
		members, err := s.guild.VoiceMembers(ctx, *settings.LobbyChannelID)
		if err != nil {
			return domain.SplitResult{}, fmt.Errorf("reading lobby members: %w", err)
		}
		roster = members
	}
	roster = UniqueRoster(roster)

	// 4. Both teams must reach the minimum size
	if len(roster)/2 < settings.MinimumTeamSize {
		return domain.SplitResult{}, fmt.Errorf("%w: %d members in the lobby, %d needed",
			errors.ErrInsufficientMembers, len(roster), 2*settings.MinimumTeamSize)
	}

	result := domain.SplitResult{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Partition: PartitionTeams(roster, s.shuffler),
	}
	log := s.log.With("split_id", result.ID.String())
	log.Info("Teams drawn",
		"invoker", cmd.Invoker.ID,
		"team_one", len(result.Partition.TeamOne),
		"team_two", len(result.Partition.TeamTwo))

	// 5. Teams are announced before anyone moves
	if announcer != nil {
		if err := announcer.AnnounceTeams(ctx, result); err != nil {
			log.Warn("Teams announcement failed", "error", err)
		}
	}

	// 6. Moves run to completion, whatever happens to the caller's context
	moveCtx := context.WithoutCancel(ctx)
	for _, team := range []domain.Team{domain.TeamOne, domain.TeamTwo} {
		channel := *settings.TeamChannel(team)
		for _, member := range result.Partition.Members(team) {
			relocation, err := s.move(moveCtx, member, team, channel)
			result.Relocations = append(result.Relocations, relocation)
			if stderrors.Is(err, errors.ErrForbidden) {
				result.Aborted = true
				result.AbortReason = errors.ErrForbidden
				log.Error("Moves aborted, missing permission", "member", member.ID, "error", err)
				return result, nil
			}
		}
	}

	log.Info("Split done",
		"moved", result.Count(domain.RelocationMoved),
		"skipped", result.Count(domain.RelocationSkipped),
		"failed", result.Count(domain.RelocationFailed))
	return result, nil
}

// move issues a single move and turns its error into an outcome.
// ErrForbidden is also returned since it concerns the whole split.
func (s *SplitService) move(ctx context.Context, member domain.Member, team domain.Team, channel domain.ChannelID) (domain.Relocation, error) {
	relocation := domain.Relocation{Member: member, Team: team, Channel: channel}

	err := s.guild.MoveMember(ctx, member, channel, s.reason)
	switch {
	case err == nil:
		relocation.Status = domain.RelocationMoved
	case stderrors.Is(err, errors.ErrForbidden):
		relocation.Status = domain.RelocationFailed
		relocation.Detail = errors.ErrForbidden.Error()
		return relocation, err
	case stderrors.Is(err, errors.ErrNotConnected):
		relocation.Status = domain.RelocationSkipped
		relocation.Detail = errors.ErrNotConnected.Error()
		s.log.Debug("Member skipped", "member", member.ID, "error", err)
	default:
		relocation.Status = domain.RelocationFailed
		relocation.Detail = err.Error()
		s.log.Warn("Member not moved", "member", member.ID, "team", team.String(), "error", err)
	}
	return relocation, nil
}

func (s *SplitService) checkChannels(ctx context.Context, settings domain.Settings) error {
	required := []struct {
		field   domain.SettingField
		channel *domain.ChannelID
	}{
		{field: domain.FieldLobby, channel: settings.LobbyChannelID},
		{field: domain.FieldTeamOne, channel: settings.TeamOneChannelID},
		{field: domain.FieldTeamTwo, channel: settings.TeamTwoChannelID},
	}

	var missing []string
	for _, r := range required {
		if r.channel == nil {
			missing = append(missing, string(r.field))
			continue
		}
		exists, err := s.guild.ChannelExists(ctx, *r.channel)
		if err != nil {
			return fmt.Errorf("resolving %s channel: %w", r.field, err)
		}
		if !exists {
			missing = append(missing, string(r.field))
		}
	}
	if len(missing) > 0 {
		return &errors.IncompleteConfigurationError{Missing: missing}
	}
	return nil
}
