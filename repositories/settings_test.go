package repositories

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"team-bot/domain"
	"team-bot/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newRepository(t *testing.T, path string) *SettingsRepository {
	t.Helper()
	repo, err := NewSettingsRepository(path, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return repo
}

func readFile(t *testing.T, path string) domain.Settings {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	settings := domain.DefaultSettings()
	require.NoError(t, yaml.Unmarshal(raw, &settings))
	return settings
}

func TestSettingsRepository_Load_CreatesDefaults(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "guilds", "42.yaml")

	// Given no settings file
	_, err := os.Stat(path)
	req.True(os.IsNotExist(err))

	// When the repository starts
	repo := newRepository(t, path)

	// Then the file exists with the default record
	req.FileExists(path)
	req.Equal(domain.DefaultSettings(), readFile(t, path))
	settings := repo.Settings()
	req.Equal(3, settings.MinimumTeamSize)
	req.Nil(settings.LobbyChannelID)
	req.Nil(settings.CaptainRoleID)
	req.Nil(settings.TeamOneChannelID)
	req.Nil(settings.TeamTwoChannelID)
}

func TestSettingsRepository_SetSurvivesRestart(t *testing.T) {
	tests := []struct {
		field domain.SettingField
		value string
	}{
		{field: domain.FieldLobby, value: "100"},
		{field: domain.FieldCaptain, value: "200"},
		{field: domain.FieldTeamOne, value: "300"},
		{field: domain.FieldTeamTwo, value: "400"},
		{field: domain.FieldMinimumTeamSize, value: "5"},
	}

	for _, tt := range tests {
		t.Run("should keep "+string(tt.field)+" after a restart", func(t *testing.T) {
			req := require.New(t)
			path := filepath.Join(t.TempDir(), "settings.yaml")
			repo := newRepository(t, path)

			// When a field is set
			req.NoError(repo.Set(tt.field, tt.value))

			// Then a new process reading the same file sees it
			restarted := newRepository(t, path)
			got, ok := restarted.Get(tt.field)
			req.True(ok)
			req.Equal(tt.value, got)
			req.Equal(repo.Settings(), restarted.Settings())
		})
	}
}

func TestSettingsRepository_EveryMutationIsFlushed(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := newRepository(t, path)

	req.NoError(repo.SetLobbyChannel("1"))
	req.Equal(repo.Settings(), readFile(t, path))

	req.NoError(repo.SetTeamOneChannel("2"))
	req.Equal(repo.Settings(), readFile(t, path))

	req.NoError(repo.SetTeamTwoChannel("3"))
	req.NoError(repo.SetCaptainRole("4"))
	req.NoError(repo.SetMinimumTeamSize(2))
	req.Equal(repo.Settings(), readFile(t, path))

	// No temporary file is left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	req.NoError(err)
	req.Len(entries, 1)
}

func TestSettingsRepository_Load_LegacyJSONDocument(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "save_data.json")
	content := `{"lobby_channel": 812345678901234567, "colour": "blue"}`
	req.NoError(os.WriteFile(path, []byte(content), 0o644))

	repo := newRepository(t, path)

	// Then known fields are read, unknown ones ignored, missing ones defaulted
	settings := repo.Settings()
	req.Equal(domain.ChannelID("812345678901234567"), lo.FromPtr(settings.LobbyChannelID))
	req.Nil(settings.TeamOneChannelID)
	req.Equal(domain.DefaultMinimumTeamSize, settings.MinimumTeamSize)
}

func TestSettingsRepository_Load_EmptyFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	req.NoError(os.WriteFile(path, nil, 0o644))

	repo := newRepository(t, path)
	req.Equal(domain.DefaultSettings(), repo.Settings())
}

func TestSettingsRepository_Load_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "should fail on unstructured data", content: "lobby_channel: [unclosed"},
		{name: "should fail when the document is not a mapping", content: "- 1\n- 2\n"},
		{name: "should fail when the team size is below one", content: "minimum_team_size: 0\n"},
		{name: "should fail when the team size is not a number", content: "minimum_team_size: three\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			path := filepath.Join(t.TempDir(), "settings.yaml")
			req.NoError(os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewSettingsRepository(path, slog.Default())

			req.ErrorIs(err, errors.ErrCorruptConfig)
		})
	}
}

func TestSettingsRepository_InvalidValues(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := newRepository(t, path)

	req.ErrorIs(repo.SetMinimumTeamSize(0), errors.ErrInvalidSetting)
	req.ErrorIs(repo.SetMinimumTeamSize(-2), errors.ErrInvalidSetting)
	req.ErrorIs(repo.Set(domain.FieldMinimumTeamSize, "many"), errors.ErrInvalidSetting)
	req.ErrorIs(repo.Set(domain.FieldLobby, "  "), errors.ErrInvalidSetting)
	req.ErrorIs(repo.Set("colour", "blue"), errors.ErrUnknownSetting)
	req.ErrorIs(repo.Unset("colour"), errors.ErrUnknownSetting)

	// Then nothing changed, in memory or on disk
	req.Equal(domain.DefaultSettings(), repo.Settings())
	req.Equal(domain.DefaultSettings(), readFile(t, path))
}

func TestSettingsRepository_PersistenceFailureRollsBack(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "guilds")
	path := filepath.Join(dir, "settings.yaml")
	repo := newRepository(t, path)
	req.NoError(repo.SetLobbyChannel("1"))

	// Given the settings directory is replaced by a regular file
	req.NoError(os.RemoveAll(dir))
	req.NoError(os.WriteFile(dir, []byte("not a directory"), 0o644))

	// When a setting is changed
	err := repo.SetLobbyChannel("2")

	// Then the error is reported and the previous value is kept
	req.ErrorIs(err, errors.ErrPersistence)
	value, ok := repo.Get(domain.FieldLobby)
	req.True(ok)
	req.Equal("1", value)
}

func TestSettingsRepository_DirectorySyncFailureKeepsChange(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "guilds", "settings.yaml")
	repo := newRepository(t, path)
	req.NoError(repo.SetLobbyChannel("1"))

	// Given the settings directory cannot be opened once the file is renamed
	openDir = func(name string) (*os.File, error) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	t.Cleanup(func() { openDir = os.Open })

	// When a setting is changed
	err := repo.SetLobbyChannel("2")

	// Then the change is reported as done and memory matches the file
	req.NoError(err)
	value, ok := repo.Get(domain.FieldLobby)
	req.True(ok)
	req.Equal("2", value)
	req.Equal(repo.Settings(), readFile(t, path))
	req.Equal(domain.ChannelID("2"), lo.FromPtr(newRepository(t, path).Settings().LobbyChannelID))
}

func TestSettingsRepository_Unset(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := newRepository(t, path)
	req.NoError(repo.SetCaptainRole("7"))
	req.NoError(repo.SetMinimumTeamSize(6))

	req.NoError(repo.Unset(domain.FieldCaptain))
	req.NoError(repo.Unset(domain.FieldMinimumTeamSize))

	_, ok := repo.Get(domain.FieldCaptain)
	req.False(ok)
	req.Equal(domain.DefaultSettings(), readFile(t, path))
}

func TestSettingsRepository_SnapshotIsDetached(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t, filepath.Join(t.TempDir(), "settings.yaml"))
	req.NoError(repo.SetLobbyChannel("1"))

	snapshot := repo.Settings()
	*snapshot.LobbyChannelID = "changed"

	value, _ := repo.Get(domain.FieldLobby)
	req.Equal("1", value)
}

func TestSettingsRepository_ConcurrentSets(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	repo := newRepository(t, path)

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(size int) {
			defer wg.Done()
			errs <- repo.SetMinimumTeamSize(size)
			errs <- repo.SetLobbyChannel(domain.ChannelID(fmt.Sprint(size)))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	// Then the last write won in memory and on disk alike
	req.Equal(repo.Settings(), readFile(t, path))
}
