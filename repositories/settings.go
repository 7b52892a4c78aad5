//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=../mocks/mock_settings_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"team-bot/domain"
	"team-bot/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type ISettingsRepository interface {
	Settings() domain.Settings
	Get(field domain.SettingField) (string, bool)
	Set(field domain.SettingField, value string) error
	Unset(field domain.SettingField) error
	SetLobbyChannel(id domain.ChannelID) error
	SetCaptainRole(id domain.RoleID) error
	SetTeamOneChannel(id domain.ChannelID) error
	SetTeamTwoChannel(id domain.ChannelID) error
	SetMinimumTeamSize(size int) error
	Load() error
}

// SettingsRepository keeps the settings of one guild in memory and writes the
// whole record to a single YAML file on every change. A change is visible to
// readers only once the file has been replaced on disk.
type SettingsRepository struct {
	mu        sync.RWMutex
	path      string
	settings  domain.Settings
	validator *validator.Validate
	log       *slog.Logger
}

// NewSettingsRepository loads the file at path, creating it with the default
// settings when it does not exist yet.
func NewSettingsRepository(path string, log *slog.Logger) (*SettingsRepository, error) {
	r := &SettingsRepository{
		path:      path,
		settings:  domain.DefaultSettings(),
		validator: validator.New(),
		log:       log,
	}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SettingsRepository) Path() string {
	return r.path
}

// Load replaces the in-memory settings with the content of the file.
// Fields missing from the file keep their default, unknown ones are ignored.
func (r *SettingsRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		defaults := domain.DefaultSettings()
		if err := r.flush(defaults); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
		}
		r.settings = defaults
		r.log.Info("Settings file created with defaults", "path", r.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading settings file %s: %w", r.path, err)
	}

	loaded := domain.DefaultSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrCorruptConfig, r.path, err)
	}
	if err := r.validator.Struct(loaded); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrCorruptConfig, r.path, err)
	}
	r.settings = loaded
	r.log.Debug("Settings loaded", "path", r.path)
	return nil
}

// Settings returns a snapshot that callers are free to modify.
func (r *SettingsRepository) Settings() domain.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Clone()
}

func (r *SettingsRepository) Get(field domain.SettingField) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Value(field)
}

// Set parses value for field and stores it.
func (r *SettingsRepository) Set(field domain.SettingField, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: empty value for %s", errors.ErrInvalidSetting, field)
	}
	switch field {
	case domain.FieldLobby:
		return r.SetLobbyChannel(domain.ChannelID(value))
	case domain.FieldCaptain:
		return r.SetCaptainRole(domain.RoleID(value))
	case domain.FieldTeamOne:
		return r.SetTeamOneChannel(domain.ChannelID(value))
	case domain.FieldTeamTwo:
		return r.SetTeamTwoChannel(domain.ChannelID(value))
	case domain.FieldMinimumTeamSize:
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", errors.ErrInvalidSetting, field, value)
		}
		return r.SetMinimumTeamSize(size)
	}
	return fmt.Errorf("%w: %q", errors.ErrUnknownSetting, field)
}

// Unset clears an identifier. The minimum team size goes back to its default.
func (r *SettingsRepository) Unset(field domain.SettingField) error {
	switch field {
	case domain.FieldLobby:
		return r.update(func(s *domain.Settings) { s.LobbyChannelID = nil })
	case domain.FieldCaptain:
		return r.update(func(s *domain.Settings) { s.CaptainRoleID = nil })
	case domain.FieldTeamOne:
		return r.update(func(s *domain.Settings) { s.TeamOneChannelID = nil })
	case domain.FieldTeamTwo:
		return r.update(func(s *domain.Settings) { s.TeamTwoChannelID = nil })
	case domain.FieldMinimumTeamSize:
		return r.update(func(s *domain.Settings) { s.MinimumTeamSize = domain.DefaultMinimumTeamSize })
	}
	return fmt.Errorf("%w: %q", errors.ErrUnknownSetting, field)
}

func (r *SettingsRepository) SetLobbyChannel(id domain.ChannelID) error {
	return r.update(func(s *domain.Settings) { s.LobbyChannelID = lo.ToPtr(id) })
}

func (r *SettingsRepository) SetCaptainRole(id domain.RoleID) error {
	return r.update(func(s *domain.Settings) { s.CaptainRoleID = lo.ToPtr(id) })
}

func (r *SettingsRepository) SetTeamOneChannel(id domain.ChannelID) error {
	return r.update(func(s *domain.Settings) { s.TeamOneChannelID = lo.ToPtr(id) })
}

func (r *SettingsRepository) SetTeamTwoChannel(id domain.ChannelID) error {
	return r.update(func(s *domain.Settings) { s.TeamTwoChannelID = lo.ToPtr(id) })
}

func (r *SettingsRepository) SetMinimumTeamSize(size int) error {
	return r.update(func(s *domain.Settings) { s.MinimumTeamSize = size })
}

// update applies mutate to a copy of the settings, writes the copy to disk
// and only then makes it the current record. If validation or the write
// fails, the current record is left as it was.
func (r *SettingsRepository) update(mutate func(s *domain.Settings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.settings.Clone()
	mutate(&next)

	if err := r.validator.Struct(next); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidSetting, err)
	}
	if err := r.flush(next); err != nil {
		r.log.Error("Settings not persisted, change rolled back", "path", r.path, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	r.settings = next
	return nil
}

func (r *SettingsRepository) flush(settings domain.Settings) error {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := atomicWrite(r.path, raw); err != nil {
		return err
	}
	// The new record is on disk from here, only its durability is at stake
	r.syncDir()
	return nil
}

// atomicWrite writes data next to path, syncs it and renames it over path,
// so a reader never sees a partially written file.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

var openDir = os.Open

// syncDir makes the rename itself durable. It runs after the rename, so its
// failures are logged and never reported to the caller.
func (r *SettingsRepository) syncDir() {
	dir := filepath.Dir(r.path)
	d, err := openDir(dir)
	if err != nil {
		r.log.Warn("Settings directory not synced", "dir", dir, "error", err)
		return
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		r.log.Debug("Settings directory sync refused", "dir", dir, "error", err)
	}
}

var _ ISettingsRepository = (*SettingsRepository)(nil)
