//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"team-bot/domain"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IMemberMover relocates one member to a voice channel.
// A nil error is a success. Failures wrap errors.ErrNotConnected when only
// this member could not be moved, errors.ErrForbidden when no member can be
// moved at all; anything else is a failure specific to the member.
type IMemberMover interface {
	MoveMember(ctx context.Context, member domain.Member, channel domain.ChannelID, reason string) error
}

// IVoiceDirectory answers questions about the voice channels of one guild.
// VoiceMembers reflects what the platform currently knows about voice
// presence and may miss members the connection has not seen join.
type IVoiceDirectory interface {
	ChannelExists(ctx context.Context, channel domain.ChannelID) (bool, error)
	VoiceMembers(ctx context.Context, channel domain.ChannelID) ([]domain.Member, error)
}

// IInvokerResolver resolves the administrator flag and the roles of a user.
// channelID is the channel the command was typed in, used for permission
// overwrites.
type IInvokerResolver interface {
	ResolveInvoker(ctx context.Context, userID domain.MemberID, channelID string) (domain.Invoker, error)
}

// IGuild is the platform surface of one guild.
type IGuild interface {
	IMemberMover
	IVoiceDirectory
	IInvokerResolver
}

// IAnnouncer publishes the teams before anyone is moved.
type IAnnouncer interface {
	AnnounceTeams(ctx context.Context, result domain.SplitResult) error
}

type IMessenger interface {
	Send(ctx context.Context, channelID, content string) error
	// SendNotice posts a message that is deleted after ttl.
	SendNotice(ctx context.Context, channelID, content string, ttl time.Duration) error
}
