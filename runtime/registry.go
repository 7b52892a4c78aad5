package runtime

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"team-bot/contract"
	"team-bot/repositories"
	"team-bot/services"

	"github.com/go-playground/validator/v10"
)

// GuildRuntime holds everything the commands of one guild work with.
type GuildRuntime struct {
	GuildID  string
	Guild    contract.IGuild
	Settings services.ISettingsService
	Splitter services.ISplitService

	splitting sync.Mutex
}

func NewGuildRuntime(guildID string, guild contract.IGuild, settings services.ISettingsService, splitter services.ISplitService) *GuildRuntime {
	return &GuildRuntime{GuildID: guildID, Guild: guild, Settings: settings, Splitter: splitter}
}

// TryLockSplit reserves the guild for one split. It returns false when a
// split is already running; otherwise the caller must call UnlockSplit.
func (g *GuildRuntime) TryLockSplit() bool {
	return g.splitting.TryLock()
}

func (g *GuildRuntime) UnlockSplit() {
	g.splitting.Unlock()
}

// GuildFactory returns the platform adapter of a guild.
type GuildFactory func(guildID string) contract.IGuild

// pendingRuntime is a runtime being loaded. done is closed once rt or err
// is set.
type pendingRuntime struct {
	done chan struct{}
	rt   *GuildRuntime
	err  error
}

// GuildRegistry creates guild runtimes on first use and keeps them for the
// lifetime of the process. Each guild has its own settings file
// <dir>/<guildID>.yaml.
type GuildRegistry struct {
	mu        sync.RWMutex
	dir       string
	guilds    map[string]*GuildRuntime
	loading   map[string]*pendingRuntime
	factory   GuildFactory
	validator *validator.Validate
	splitOpts []services.SplitOption
	log       *slog.Logger
}

func NewGuildRegistry(dir string, factory GuildFactory, log *slog.Logger, splitOpts ...services.SplitOption) *GuildRegistry {
	return &GuildRegistry{
		dir:       dir,
		guilds:    make(map[string]*GuildRuntime),
		loading:   make(map[string]*pendingRuntime),
		factory:   factory,
		validator: validator.New(),
		splitOpts: splitOpts,
		log:       log,
	}
}

// Runtime returns the runtime of guildID, loading its settings file the
// first time. A failed load is not cached so the next command retries.
func (r *GuildRegistry) Runtime(guildID string) (*GuildRuntime, error) {
	r.mu.RLock()
	rt, ok := r.guilds[guildID]
	r.mu.RUnlock()
	if ok {
		return rt, nil
	}

	// Guild ids end up in a file name
	if err := r.validator.Var(guildID, "required,numeric"); err != nil {
		return nil, fmt.Errorf("invalid guild id %q: %w", guildID, err)
	}

	// Only the map is guarded: files are read outside the lock, and
	// concurrent callers for the same guild wait for the first one.
	r.mu.Lock()
	if rt, ok := r.guilds[guildID]; ok {
		r.mu.Unlock()
		return rt, nil
	}
	if pending, ok := r.loading[guildID]; ok {
		r.mu.Unlock()
		<-pending.done
		return pending.rt, pending.err
	}
	pending := &pendingRuntime{done: make(chan struct{})}
	r.loading[guildID] = pending
	r.mu.Unlock()

	pending.rt, pending.err = r.load(guildID)

	r.mu.Lock()
	if pending.err == nil {
		r.guilds[guildID] = pending.rt
	}
	delete(r.loading, guildID)
	r.mu.Unlock()
	close(pending.done)
	return pending.rt, pending.err
}

func (r *GuildRegistry) load(guildID string) (*GuildRuntime, error) {
	log := r.log.With("guild", guildID)
	repository, err := repositories.NewSettingsRepository(r.SettingsPath(guildID), log)
	if err != nil {
		return nil, err
	}
	guild := r.factory(guildID)
	rt := NewGuildRuntime(
		guildID,
		guild,
		services.NewSettingsService(repository, guild, log),
		services.NewSplitService(repository, guild, log, r.splitOpts...),
	)
	log.Info("Guild runtime ready", "path", repository.Path())
	return rt, nil
}

func (r *GuildRegistry) SettingsPath(guildID string) string {
	return filepath.Join(r.dir, guildID+".yaml")
}

// Guilds lists the guilds with a loaded runtime, sorted.
func (r *GuildRegistry) Guilds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.guilds))
	for id := range r.guilds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
