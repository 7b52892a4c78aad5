package discord

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"team-bot/contract"
	"team-bot/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// guildClient is the part of the REST API a guild adapter calls.
// *discordgo.Session implements it.
type guildClient interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildMemberMove(guildID string, userID string, channelID *string, options ...discordgo.RequestOption) error
}

// Guild adapts one guild of the gateway session. Reads are served from the
// session state first and fall back to REST on a cache miss.
type Guild struct {
	guildID string
	client  guildClient
	state   *discordgo.State
	log     *slog.Logger
}

func NewGuild(guildID string, session *discordgo.Session, log *slog.Logger) *Guild {
	return newGuild(guildID, session, session.State, log)
}

func newGuild(guildID string, client guildClient, state *discordgo.State, log *slog.Logger) *Guild {
	return &Guild{guildID: guildID, client: client, state: state, log: log.With("guild", guildID)}
}

// MoveMember moves a member already connected to voice. The reason shows up
// in the guild audit log.
func (g *Guild) MoveMember(ctx context.Context, member domain.Member, channel domain.ChannelID, reason string) error {
	target := string(channel)
	err := g.client.GuildMemberMove(g.guildID, string(member.ID), &target,
		discordgo.WithAuditLogReason(reason),
		discordgo.WithContext(ctx),
	)
	return classify(err)
}

// ChannelExists reports whether channel is a voice channel of this guild.
func (g *Guild) ChannelExists(ctx context.Context, channel domain.ChannelID) (bool, error) {
	ch, err := g.state.Channel(string(channel))
	if stderrors.Is(err, discordgo.ErrStateNotFound) {
		ch, err = g.client.Channel(string(channel), discordgo.WithContext(ctx))
		if isUnknownChannel(err) {
			return false, nil
		}
	}
	if err != nil {
		return false, classify(err)
	}
	return ch.GuildID == g.guildID && isVoice(ch.Type), nil
}

// VoiceMembers lists the human members the session has seen in channel.
// Members joining before the session received their voice state are missed.
func (g *Guild) VoiceMembers(ctx context.Context, channel domain.ChannelID) ([]domain.Member, error) {
	guild, err := g.state.Guild(g.guildID)
	if err != nil {
		return nil, fmt.Errorf("guild %s not in session state: %w", g.guildID, err)
	}

	g.state.RLock()
	states := lo.Filter(guild.VoiceStates, func(vs *discordgo.VoiceState, _ int) bool {
		return vs.ChannelID == string(channel)
	})
	g.state.RUnlock()

	members := make([]domain.Member, 0, len(states))
	for _, vs := range states {
		m := vs.Member
		if m == nil || m.User == nil {
			if m, err = g.member(ctx, vs.UserID); err != nil {
				g.log.Warn("Voice member not resolved", "user", vs.UserID, "error", err)
				continue
			}
		}
		if m.User != nil && m.User.Bot {
			continue
		}
		members = append(members, domain.NewMember(domain.MemberID(vs.UserID), displayName(m)))
	}
	return members, nil
}

// ResolveInvoker reads the roles of userID and whether it administers the
// guild, accounting for permission overwrites of channelID.
func (g *Guild) ResolveInvoker(ctx context.Context, userID domain.MemberID, channelID string) (domain.Invoker, error) {
	m, err := g.member(ctx, string(userID))
	if err != nil {
		return domain.Invoker{}, fmt.Errorf("resolving member %s: %w", userID, err)
	}

	perms, err := g.state.UserChannelPermissions(string(userID), channelID)
	if err != nil {
		g.log.Debug("Permissions not resolved", "user", userID, "channel", channelID, "error", err)
	}

	return domain.Invoker{
		ID:            userID,
		Administrator: perms&discordgo.PermissionAdministrator != 0,
		Roles: lo.Map(m.Roles, func(id string, _ int) domain.RoleID {
			return domain.RoleID(id)
		}),
	}, nil
}

func (g *Guild) member(ctx context.Context, userID string) (*discordgo.Member, error) {
	m, err := g.state.Member(g.guildID, userID)
	if err == nil {
		return m, nil
	}
	m, err = g.client.GuildMember(g.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, classify(err)
	}
	m.GuildID = g.guildID
	if err := g.state.MemberAdd(m); err != nil {
		g.log.Debug("Member not cached", "user", userID, "error", err)
	}
	return m, nil
}

func displayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User == nil {
		return ""
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}

func isVoice(t discordgo.ChannelType) bool {
	return t == discordgo.ChannelTypeGuildVoice || t == discordgo.ChannelTypeGuildStageVoice
}

var _ contract.IGuild = (*Guild)(nil)
