package commands

import (
	"context"
	"team-bot/contract"
	"team-bot/domain"
)

// ChannelAnnouncer posts the teams in the channel the split was asked in.
type ChannelAnnouncer struct {
	messenger contract.IMessenger
	channelID string
}

func NewChannelAnnouncer(messenger contract.IMessenger, channelID string) *ChannelAnnouncer {
	return &ChannelAnnouncer{messenger: messenger, channelID: channelID}
}

func (a *ChannelAnnouncer) AnnounceTeams(ctx context.Context, result domain.SplitResult) error {
	return a.messenger.Send(ctx, a.channelID, RenderTeams(result))
}

var _ contract.IAnnouncer = (*ChannelAnnouncer)(nil)
