package discord

import (
	"context"
	"fmt"
	"log/slog"
	"team-bot/domain"

	"github.com/bwmarrin/discordgo"
)

// Intents needed to read commands, voice presence and member roles.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

type MessageHandler interface {
	Handle(ctx context.Context, msg domain.IncomingMessage) error
}

// NewSession prepares a bot session. The connection is opened by Gateway.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = Intents
	session.StateEnabled = true
	return session, nil
}

// Gateway keeps the websocket connection open and hands every guild message
// to the handler. It is meant to run under a supervisor.
type Gateway struct {
	session *discordgo.Session
	handler MessageHandler
	log     *slog.Logger
}

func NewGateway(session *discordgo.Session, handler MessageHandler, log *slog.Logger) *Gateway {
	return &Gateway{session: session, handler: handler, log: log}
}

func (g *Gateway) Run(ctx context.Context) error {
	remove := g.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		g.onMessage(ctx, m)
	})
	defer remove()

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}
	g.log.Info("Gateway connected")

	<-ctx.Done()
	if err := g.session.Close(); err != nil {
		g.log.Warn("Gateway not closed cleanly", "error", err)
	}
	g.log.Info("Gateway disconnected")
	return nil
}

func (g *Gateway) onMessage(ctx context.Context, m *discordgo.MessageCreate) {
	msg, ok := toIncomingMessage(m)
	if !ok {
		return
	}
	if err := g.handler.Handle(ctx, msg); err != nil {
		g.log.Error("Command failed", "guild", msg.GuildID, "channel", msg.ChannelID, "author", msg.AuthorID, "error", err)
	}
}

// toIncomingMessage keeps guild messages written by humans.
func toIncomingMessage(m *discordgo.MessageCreate) (domain.IncomingMessage, bool) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return domain.IncomingMessage{}, false
	}
	return domain.IncomingMessage{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		AuthorID:  domain.MemberID(m.Author.ID),
		Content:   m.Content,
		CreatedAt: m.Timestamp.UTC(),
	}, true
}
