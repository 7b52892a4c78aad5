package discord

import (
	"context"
	"log/slog"
	"strings"
	"team-bot/contract"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MaxMessageLength is the longest content a single message may carry.
const MaxMessageLength = 2000

const codeFence = "```"

type messageClient interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

type Messenger struct {
	client messageClient
	log    *slog.Logger
}

func NewMessenger(client messageClient, log *slog.Logger) *Messenger {
	return &Messenger{client: client, log: log}
}

// Send posts content, split over several messages when it is too long.
func (m *Messenger) Send(ctx context.Context, channelID, content string) error {
	for _, chunk := range chunkContent(content, MaxMessageLength) {
		if _, err := m.client.ChannelMessageSend(channelID, chunk, discordgo.WithContext(ctx)); err != nil {
			return classify(err)
		}
	}
	return nil
}

// SendNotice posts a short message and deletes it once ttl has elapsed.
func (m *Messenger) SendNotice(ctx context.Context, channelID, content string, ttl time.Duration) error {
	msg, err := m.client.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return classify(err)
	}
	time.AfterFunc(ttl, func() {
		if err := m.client.ChannelMessageDelete(channelID, msg.ID); err != nil {
			m.log.Debug("Notice not deleted", "channel", channelID, "message", msg.ID, "error", err)
		}
	})
	return nil
}

// chunkContent cuts content on line boundaries so that no chunk exceeds
// limit. A code block cut in two is closed and reopened around the cut.
func chunkContent(content string, limit int) []string {
	if len(content) <= limit {
		return []string{content}
	}

	var (
		chunks  []string
		current strings.Builder
		inFence bool
	)
	// Room kept to close a fence at the end of a chunk
	budget := limit - len(codeFence) - 1
	// Longest piece that still fits after a reopened fence
	piece := budget - len(codeFence) - 1

	flush := func() {
		chunk := strings.TrimSuffix(current.String(), "\n")
		if inFence {
			chunk += "\n" + codeFence
		}
		chunks = append(chunks, chunk)
		current.Reset()
		if inFence {
			current.WriteString(codeFence + "\n")
		}
	}

	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > 0 {
			part := line[:min(len(line), piece)]
			line = line[len(part):]
			if current.Len()+len(part) > budget {
				flush()
			}
			current.WriteString(part)
			if strings.HasPrefix(strings.TrimSpace(part), codeFence) {
				inFence = !inFence
			}
		}
	}
	if current.Len() > 0 {
		inFence = false
		flush()
	}
	return chunks
}

var _ contract.IMessenger = (*Messenger)(nil)
