package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"team-bot/repositories"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

type Config struct {
	SaveDataDir string `envconfig:"TEAMCTL_SAVE_DATA_DIR" default:"save_data"`
	LogLevel    string `envconfig:"TEAMCTL_LOG_LEVEL" default:"WARN"`
	// TEAMCTL_COLOURS turns coloured output on or off
	Colours bool `envconfig:"TEAMCTL_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// App holds what every command works with.
type App struct {
	Repository repositories.ISettingsRepository
	Out        io.Writer
	Err        io.Writer
	Colours    bool
	Log        *slog.Logger
}

// AppProvider opens the settings file on first use, once flags are parsed.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	Config  Config
	GuildID string
	File    string
	Out     io.Writer
	Err     io.Writer
}

func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider returns a provider serving app as is.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{app: app, Out: app.Out, Err: app.Err}
}

func (p *AppProvider) init() (*App, error) {
	path, err := p.settingsPath()
	if err != nil {
		return nil, err
	}
	log := logs.GetLoggerFromString(p.Config.LogLevel)
	repository, err := repositories.NewSettingsRepository(path, log)
	if err != nil {
		return nil, err
	}
	return &App{
		Repository: repository,
		Out:        p.Out,
		Err:        p.Err,
		Colours:    p.Config.Colours,
		Log:        log,
	}, nil
}

func (p *AppProvider) settingsPath() (string, error) {
	if p.File != "" {
		return p.File, nil
	}
	if p.GuildID == "" {
		return "", fmt.Errorf("either --guild or --file is required")
	}
	return filepath.Join(p.Config.SaveDataDir, p.GuildID+".yaml"), nil
}

func Execute() error {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	provider := &AppProvider{Config: cfg, Out: os.Stdout, Err: os.Stderr}
	return newRootCmd(provider).Execute()
}

func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teamctl",
		Short: "Manage the team bot settings of a guild",
		Long: `teamctl reads and writes the settings file the team bot keeps for each
guild (<save data dir>/<guild id>.yaml). Changes are written the same way
the bot writes them, so a running bot picks them up on its next start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&provider.GuildID, "guild", "g", "", "Guild id, resolved in TEAMCTL_SAVE_DATA_DIR")
	rootCmd.PersistentFlags().StringVarP(&provider.File, "file", "f", "", "Settings file path, overrides --guild")

	rootCmd.AddCommand(
		newShowCmd(provider),
		newSetCmd(provider),
		newUnsetCmd(provider),
		newSimulateCmd(provider),
	)
	return rootCmd
}
