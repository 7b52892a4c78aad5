package main

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	BotToken        string        `env:"BOT_TOKEN,required=true" validate:"required"`
	CommandPrefix   string        `env:"COMMAND_PREFIX,default=." validate:"required,max=16"`
	SaveDataDir     string        `env:"SAVE_DATA_DIR,default=save_data" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	MoveReason      string        `env:"MOVE_REASON,default=Team split" validate:"max=512"`
	NoticeTTL       time.Duration `env:"NOTICE_TTL,default=5s" validate:"gt=0"`
	HealthInterval  time.Duration `env:"HEALTH_INTERVAL,default=1m" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=2s" validate:"gt=0"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
