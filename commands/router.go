package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"team-bot/auth"
	"team-bot/contract"
	"team-bot/domain"
	"team-bot/errors"
	"team-bot/observability"
	"team-bot/runtime"
	"time"
)

const DefaultNoticeTTL = 5 * time.Second

// Runtimes gives access to the per-guild runtimes.
type Runtimes interface {
	Runtime(guildID string) (*runtime.GuildRuntime, error)
	Guilds() []string
}

type Monitor interface {
	RecordSplit(result domain.SplitResult)
	IncrRejected()
	GetLatest() observability.MonitoringStats
}

// Router runs the command found in a guild message and replies in the same
// channel. Member mistakes are answered, not returned: Handle only returns
// errors the member is not told about.
type Router struct {
	prefix    string
	runtimes  Runtimes
	messenger contract.IMessenger
	monitor   Monitor
	noticeTTL time.Duration
	log       *slog.Logger
}

func NewRouter(prefix string, runtimes Runtimes, messenger contract.IMessenger, monitor Monitor, noticeTTL time.Duration, log *slog.Logger) *Router {
	if noticeTTL <= 0 {
		noticeTTL = DefaultNoticeTTL
	}
	return &Router{
		prefix:    prefix,
		runtimes:  runtimes,
		messenger: messenger,
		monitor:   monitor,
		noticeTTL: noticeTTL,
		log:       log,
	}
}

func (r *Router) Handle(ctx context.Context, msg domain.IncomingMessage) error {
	cmd, ok := Parse(r.prefix, msg.Content)
	if !ok {
		return nil
	}
	log := r.log.With("guild", msg.GuildID, "command", cmd.Name, "author", msg.AuthorID)

	switch cmd.Name {
	case CommandHelp:
		return r.reply(ctx, msg, RenderHelp(r.prefix))
	case CommandStatus:
		return r.reply(ctx, msg, RenderStatus(r.monitor.GetLatest(), len(r.runtimes.Guilds())))
	case CommandSplit, CommandConfig:
	default:
		log.Debug("Unknown command ignored")
		return nil
	}

	rt, err := r.runtimes.Runtime(msg.GuildID)
	if err != nil {
		return r.fail(ctx, log, msg, err)
	}
	if cmd.Name == CommandSplit {
		return r.split(ctx, log, msg, rt)
	}
	return r.config(ctx, log, msg, rt, cmd.Args)
}

func (r *Router) split(ctx context.Context, log *slog.Logger, msg domain.IncomingMessage, rt *runtime.GuildRuntime) error {
	invoker, err := rt.Guild.ResolveInvoker(ctx, msg.AuthorID, msg.ChannelID)
	if err != nil {
		return r.fail(ctx, log, msg, err)
	}

	if !rt.TryLockSplit() {
		return r.fail(ctx, log, msg, errors.ErrSplitInProgress)
	}
	defer rt.UnlockSplit()

	result, err := rt.Splitter.Split(ctx, domain.SplitCommand{Invoker: invoker}, NewChannelAnnouncer(r.messenger, msg.ChannelID))
	if err != nil {
		r.monitor.IncrRejected()
		return r.fail(ctx, log, msg, err)
	}
	r.monitor.RecordSplit(result)
	return r.reply(ctx, msg, RenderSplitResult(result))
}

func (r *Router) config(ctx context.Context, log *slog.Logger, msg domain.IncomingMessage, rt *runtime.GuildRuntime, args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "show") {
		return r.reply(ctx, msg, RenderSettings(rt.Settings.Current()))
	}

	// Members who may not change settings get the same answer whatever they typed
	invoker, err := rt.Guild.ResolveInvoker(ctx, msg.AuthorID, msg.ChannelID)
	if err != nil {
		return r.fail(ctx, log, msg, err)
	}
	if err := auth.Authorize(invoker, rt.Settings.Current().CaptainRoleID); err != nil {
		return r.fail(ctx, log, msg, err)
	}

	unset := strings.EqualFold(args[0], "unset")
	if unset {
		args = args[1:]
	}
	if len(args) == 0 || (!unset && len(args) < 2) {
		return r.reply(ctx, msg, RenderHelp(r.prefix))
	}

	field, ok := domain.ParseSettingField(strings.ToLower(args[0]))
	if !ok {
		return r.fail(ctx, log, msg, fmt.Errorf("%w: %s", errors.ErrUnknownSetting, args[0]))
	}

	cmd := domain.SettingCommand{Invoker: invoker, Field: field}
	if !unset {
		value := args[1]
		if field != domain.FieldMinimumTeamSize {
			id, ok := ParseID(field, value)
			if !ok {
				return r.fail(ctx, log, msg, fmt.Errorf("%w: %s is not a valid %s", errors.ErrInvalidSetting, value, field))
			}
			value = id
		}
		cmd.Value = &value
	}

	settings, err := rt.Settings.Apply(ctx, cmd)
	if err != nil {
		return r.fail(ctx, log, msg, err)
	}
	verb := "updated"
	if unset {
		verb = "cleared"
	}
	return r.reply(ctx, msg, fmt.Sprintf("Setting `%s` %s.\n%s", field, verb, RenderSettings(settings)))
}

func (r *Router) reply(ctx context.Context, msg domain.IncomingMessage, content string) error {
	return r.messenger.Send(ctx, msg.ChannelID, content)
}

// fail answers a failed command. Unauthorized attempts get a notice that
// disappears after a while.
func (r *Router) fail(ctx context.Context, log *slog.Logger, msg domain.IncomingMessage, err error) error {
	if stderrors.Is(err, errors.ErrUnauthorized) {
		log.Info("Command refused", "error", err)
		return r.messenger.SendNotice(ctx, msg.ChannelID, UnauthorizedNotice, r.noticeTTL)
	}
	if expected(err) {
		log.Info("Command rejected", "error", err)
	} else {
		log.Error("Command failed", "error", err)
	}
	return r.reply(ctx, msg, Describe(r.prefix, err))
}

// expected reports errors caused by the member or the guild setup.
func expected(err error) bool {
	for _, target := range []error{
		errors.ErrIncompleteConfiguration,
		errors.ErrInsufficientMembers,
		errors.ErrSplitInProgress,
		errors.ErrChannelNotFound,
		errors.ErrInvalidSetting,
		errors.ErrUnknownSetting,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
