//go:generate go run go.uber.org/mock/mockgen -source=settings_service.go -destination=../mocks/mock_settings_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"team-bot/auth"
	"team-bot/contract"
	"team-bot/domain"
	"team-bot/errors"
	"team-bot/repositories"

	"github.com/samber/lo"
)

type ISettingsService interface {
	Current() domain.Settings
	Apply(ctx context.Context, cmd domain.SettingCommand) (domain.Settings, error)
}

type SettingsService struct {
	repository repositories.ISettingsRepository
	directory  contract.IVoiceDirectory
	log        *slog.Logger
}

func NewSettingsService(repository repositories.ISettingsRepository, directory contract.IVoiceDirectory, log *slog.Logger) *SettingsService {
	return &SettingsService{repository: repository, directory: directory, log: log}
}

// Current can be read by anyone.
func (s *SettingsService) Current() domain.Settings {
	return s.repository.Settings()
}

// Apply changes one setting on behalf of an administrator or a captain.
// Channel settings must point to an existing voice channel of the guild.
func (s *SettingsService) Apply(ctx context.Context, cmd domain.SettingCommand) (domain.Settings, error) {
	current := s.repository.Settings()
	if err := auth.Authorize(cmd.Invoker, current.CaptainRoleID); err != nil {
		return current, err
	}

	if cmd.Value == nil {
		if err := s.repository.Unset(cmd.Field); err != nil {
			return current, err
		}
		s.log.Info("Setting cleared", "field", cmd.Field, "by", cmd.Invoker.ID)
		return s.repository.Settings(), nil
	}

	value := strings.TrimSpace(lo.FromPtr(cmd.Value))
	if cmd.Field.IsChannel() && value != "" {
		exists, err := s.directory.ChannelExists(ctx, domain.ChannelID(value))
		if err != nil {
			return current, fmt.Errorf("resolving channel %s: %w", value, err)
		}
		if !exists {
			return current, fmt.Errorf("%w: %s", errors.ErrChannelNotFound, value)
		}
	}

	if err := s.repository.Set(cmd.Field, value); err != nil {
		return current, err
	}
	s.log.Info("Setting changed", "field", cmd.Field, "value", value, "by", cmd.Invoker.ID)
	return s.repository.Settings(), nil
}
