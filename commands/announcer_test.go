package commands

import (
	"context"
	"team-bot/domain"
	"team-bot/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannelAnnouncer_AnnounceTeams(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockIMessenger(ctrl)
	result := domain.SplitResult{Partition: domain.Partition{
		TeamOne: []domain.Member{domain.NewMember("1", "Alice")},
		TeamTwo: []domain.Member{domain.NewMember("2", "Bob")},
	}}

	messenger.EXPECT().Send(gomock.Any(), "text", RenderTeams(result)).Return(nil)

	req.NoError(NewChannelAnnouncer(messenger, "text").AnnounceTeams(context.Background(), result))
}
