package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"team-bot/domain"
	"team-bot/errors"
	"team-bot/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// keepOrder leaves the roster as is, so team one is the first half of it.
var keepOrder = ShuffleFunc(func(int, func(i, j int)) {})

var admin = domain.Invoker{ID: "admin", Administrator: true}

func configuredSettings() domain.Settings {
	return domain.Settings{
		LobbyChannelID:   lo.ToPtr(domain.ChannelID("lobby")),
		CaptainRoleID:    lo.ToPtr(domain.RoleID("captain")),
		TeamOneChannelID: lo.ToPtr(domain.ChannelID("one")),
		TeamTwoChannelID: lo.ToPtr(domain.ChannelID("two")),
		MinimumTeamSize:  3,
	}
}

type splitFixture struct {
	guild     *mocks.MockIGuild
	announcer *mocks.MockIAnnouncer
	service   *SplitService
}

func newSplitFixture(t *testing.T, settings domain.Settings) splitFixture {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockSettingsReader(ctrl)
	reader.EXPECT().Settings().Return(settings).AnyTimes()
	guild := mocks.NewMockIGuild(ctrl)
	announcer := mocks.NewMockIAnnouncer(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return splitFixture{
		guild:     guild,
		announcer: announcer,
		service:   NewSplitService(reader, guild, log, WithShuffler(keepOrder), WithMoveReason("Scrim")),
	}
}

func (f splitFixture) channelsExist() {
	f.guild.EXPECT().ChannelExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
}

func TestSplitService_Split_SixMembers(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	members := roster(6)

	// Then teams are announced first, then everybody is moved in order
	gomock.InOrder(
		f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[0], domain.ChannelID("one"), "Scrim").Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[1], domain.ChannelID("one"), "Scrim").Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[2], domain.ChannelID("one"), "Scrim").Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[3], domain.ChannelID("two"), "Scrim").Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[4], domain.ChannelID("two"), "Scrim").Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[5], domain.ChannelID("two"), "Scrim").Return(nil),
	)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: members}, f.announcer)

	req.NoError(err)
	req.NotEqual("", result.ID.String())
	req.Len(result.Partition.TeamOne, 3)
	req.Len(result.Partition.TeamTwo, 3)
	req.Len(result.Relocations, 6)
	req.Equal(6, result.Count(domain.RelocationMoved))
	req.False(result.Aborted)
	req.Empty(result.Pending())
}

func TestSplitService_Split_InsufficientMembers(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()

	// Given 4 members while teams need at least 3 each
	f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Times(0)
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: roster(4)}, f.announcer)

	req.ErrorIs(err, errors.ErrInsufficientMembers)
	req.Empty(result.Partition.TeamOne)
	req.Empty(result.Partition.TeamTwo)
}

func TestSplitService_Split_EmptyLobby(t *testing.T) {
	req := require.New(t)
	settings := configuredSettings()
	settings.MinimumTeamSize = 1
	f := newSplitFixture(t, settings)
	f.channelsExist()
	f.guild.EXPECT().VoiceMembers(gomock.Any(), domain.ChannelID("lobby")).Return(nil, nil)
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin}, nil)

	req.ErrorIs(err, errors.ErrInsufficientMembers)
}

func TestSplitService_Split_NotConnectedMemberIsSkipped(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	members := roster(6)

	// Given the third member left voice in the meantime
	f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		f.guild.EXPECT().MoveMember(gomock.Any(), members[0], gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[1], gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[2], gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: code 40032", errors.ErrNotConnected)),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[3], gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[4], gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[5], gomock.Any(), gomock.Any()).Return(nil),
	)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: members}, f.announcer)

	// Then the member is skipped and the others are still moved
	req.NoError(err)
	req.False(result.Aborted)
	req.Len(result.Relocations, 6)
	req.Equal(members[2], result.Relocations[2].Member)
	req.Equal(domain.RelocationSkipped, result.Relocations[2].Status)
	req.Equal(5, result.Count(domain.RelocationMoved))
}

func TestSplitService_Split_OtherMemberFailureContinues(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	members := roster(7)

	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m domain.Member, _ domain.ChannelID, _ string) error {
			if m.ID == "m5" {
				return stderrors.New("upstream timeout")
			}
			return nil
		}).Times(7)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: members}, nil)

	req.NoError(err)
	req.Len(result.Partition.TeamOne, 4)
	req.Len(result.Partition.TeamTwo, 3)
	req.Equal(6, result.Count(domain.RelocationMoved))
	failed := lo.Filter(result.Relocations, func(r domain.Relocation, _ int) bool {
		return r.Status == domain.RelocationFailed
	})
	req.Len(failed, 1)
	req.Equal(domain.MemberID("m5"), failed[0].Member.ID)
	req.Equal(domain.TeamTwo, failed[0].Team)
	req.Equal("upstream timeout", failed[0].Detail)
}

func TestSplitService_Split_ForbiddenAbortsRemainingMoves(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	members := roster(6)

	// Given the bot lost its move permission
	f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		f.guild.EXPECT().MoveMember(gomock.Any(), members[0], gomock.Any(), gomock.Any()).Return(nil),
		f.guild.EXPECT().MoveMember(gomock.Any(), members[1], gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: code 50013", errors.ErrForbidden)),
	)
	for _, m := range members[2:] {
		f.guild.EXPECT().MoveMember(gomock.Any(), m, gomock.Any(), gomock.Any()).Times(0)
	}

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: members}, f.announcer)

	// Then the split reports a partial result
	req.NoError(err)
	req.True(result.Aborted)
	req.ErrorIs(result.AbortReason, errors.ErrForbidden)
	req.Len(result.Relocations, 2)
	req.Equal(domain.RelocationMoved, result.Relocations[0].Status)
	req.Equal(domain.RelocationFailed, result.Relocations[1].Status)
	req.Equal(ids(members[2:]), ids(result.Pending()))
}

func TestSplitService_Split_IncompleteConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		settings func() domain.Settings
		deleted  []domain.ChannelID
		missing  []string
	}{
		{
			name: "should report the lobby when it is not configured",
			settings: func() domain.Settings {
				s := configuredSettings()
				s.LobbyChannelID = nil
				return s
			},
			missing: []string{"lobby"},
		},
		{
			name: "should report every channel when nothing is configured",
			settings: func() domain.Settings {
				return domain.DefaultSettings()
			},
			missing: []string{"lobby", "team_one", "team_two"},
		},
		{
			name:     "should report the team two channel when it was deleted",
			settings: configuredSettings,
			deleted:  []domain.ChannelID{"two"},
			missing:  []string{"team_two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newSplitFixture(t, tt.settings())
			f.guild.EXPECT().ChannelExists(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ch domain.ChannelID) (bool, error) {
					return !lo.Contains(tt.deleted, ch), nil
				}).AnyTimes()
			f.guild.EXPECT().VoiceMembers(gomock.Any(), gomock.Any()).Times(0)
			f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: roster(6)}, f.announcer)

			req.ErrorIs(err, errors.ErrIncompleteConfiguration)
			var incomplete *errors.IncompleteConfigurationError
			req.True(stderrors.As(err, &incomplete))
			req.Equal(tt.missing, incomplete.Missing)
		})
	}
}

func TestSplitService_Split_ChannelLookupError(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	lookupErr := stderrors.New("gateway unavailable")
	f.guild.EXPECT().ChannelExists(gomock.Any(), domain.ChannelID("lobby")).Return(false, lookupErr)
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: roster(6)}, nil)

	req.ErrorIs(err, lookupErr)
}

func TestSplitService_Split_Authorization(t *testing.T) {
	tests := []struct {
		name        string
		invoker     domain.Invoker
		captainRole *domain.RoleID
		authorized  bool
	}{
		{name: "should allow an administrator", invoker: admin, captainRole: lo.ToPtr(domain.RoleID("captain")), authorized: true},
		{name: "should allow a captain", invoker: domain.Invoker{ID: "c", Roles: []domain.RoleID{"captain"}}, captainRole: lo.ToPtr(domain.RoleID("captain")), authorized: true},
		{name: "should refuse a member without the captain role", invoker: domain.Invoker{ID: "p", Roles: []domain.RoleID{"player"}}, captainRole: lo.ToPtr(domain.RoleID("captain")), authorized: false},
		{name: "should refuse anyone but administrators when no captain role is configured", invoker: domain.Invoker{ID: "c", Roles: []domain.RoleID{"captain"}}, captainRole: nil, authorized: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			settings := configuredSettings()
			settings.CaptainRoleID = tt.captainRole
			f := newSplitFixture(t, settings)

			if tt.authorized {
				f.channelsExist()
				f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)
			} else {
				f.guild.EXPECT().ChannelExists(gomock.Any(), gomock.Any()).Times(0)
				f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			_, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: tt.invoker, Roster: roster(6)}, nil)

			if tt.authorized {
				req.NoError(err)
			} else {
				req.ErrorIs(err, errors.ErrUnauthorized)
			}
		})
	}
}

func TestSplitService_Split_RosterFromLobbyWithoutDuplicates(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	members := roster(6)
	f.guild.EXPECT().VoiceMembers(gomock.Any(), domain.ChannelID("lobby")).
		Return(append(members, members[0], members[3]), nil)
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin}, nil)

	req.NoError(err)
	req.Equal(6, result.Partition.Size())
	req.ElementsMatch(ids(members), ids(lo.Map(result.Relocations, func(r domain.Relocation, _ int) domain.Member {
		return r.Member
	})))
}

func TestSplitService_Split_AnnouncementFailureDoesNotStopMoves(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).Return(stderrors.New("cannot send"))
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(6)

	result, err := f.service.Split(context.Background(), domain.SplitCommand{Invoker: admin, Roster: roster(6)}, f.announcer)

	req.NoError(err)
	req.Equal(6, result.Count(domain.RelocationMoved))
}

func TestSplitService_Split_MovesSurviveCallerCancellation(t *testing.T) {
	req := require.New(t)
	f := newSplitFixture(t, configuredSettings())
	f.channelsExist()
	ctx, cancel := context.WithCancel(context.Background())

	// Given the caller gives up once the teams are announced
	f.announcer.EXPECT().AnnounceTeams(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.SplitResult) error {
			cancel()
			return nil
		})
	f.guild.EXPECT().MoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.Member, _ domain.ChannelID, _ string) error {
			return ctx.Err()
		}).Times(6)

	result, err := f.service.Split(ctx, domain.SplitCommand{Invoker: admin, Roster: roster(6)}, f.announcer)

	// Then every move still happens
	req.NoError(err)
	req.Equal(6, result.Count(domain.RelocationMoved))
}
