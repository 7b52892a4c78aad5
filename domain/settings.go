package domain

import (
	"strconv"

	"github.com/samber/lo"
)

const DefaultMinimumTeamSize = 3

// Settings is the durable configuration of one guild.
// A nil identifier means the setting has not been configured yet.
type Settings struct {
	LobbyChannelID   *ChannelID `yaml:"lobby_channel,omitempty"`
	CaptainRoleID    *RoleID    `yaml:"captain_role,omitempty"`
	TeamOneChannelID *ChannelID `yaml:"team_one_channel,omitempty"`
	TeamTwoChannelID *ChannelID `yaml:"team_two_channel,omitempty"`
	MinimumTeamSize  int        `yaml:"minimum_team_size" validate:"gt=0"`
}

func DefaultSettings() Settings {
	return Settings{MinimumTeamSize: DefaultMinimumTeamSize}
}

// Clone returns a copy that shares no pointers with s.
func (s Settings) Clone() Settings {
	return Settings{
		LobbyChannelID:   clonePtr(s.LobbyChannelID),
		CaptainRoleID:    clonePtr(s.CaptainRoleID),
		TeamOneChannelID: clonePtr(s.TeamOneChannelID),
		TeamTwoChannelID: clonePtr(s.TeamTwoChannelID),
		MinimumTeamSize:  s.MinimumTeamSize,
	}
}

// TeamChannel returns the destination channel configured for team.
func (s Settings) TeamChannel(team Team) *ChannelID {
	if team == TeamTwo {
		return s.TeamTwoChannelID
	}
	return s.TeamOneChannelID
}

// Value returns the string form of field and whether it is configured.
func (s Settings) Value(field SettingField) (string, bool) {
	switch field {
	case FieldLobby:
		return string(lo.FromPtr(s.LobbyChannelID)), s.LobbyChannelID != nil
	case FieldCaptain:
		return string(lo.FromPtr(s.CaptainRoleID)), s.CaptainRoleID != nil
	case FieldTeamOne:
		return string(lo.FromPtr(s.TeamOneChannelID)), s.TeamOneChannelID != nil
	case FieldTeamTwo:
		return string(lo.FromPtr(s.TeamTwoChannelID)), s.TeamTwoChannelID != nil
	case FieldMinimumTeamSize:
		return strconv.Itoa(s.MinimumTeamSize), true
	}
	return "", false
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return lo.ToPtr(*p)
}

// SettingField names a single setting, as used by the config command and the
// incomplete configuration report.
type SettingField string

const (
	FieldLobby           SettingField = "lobby"
	FieldCaptain         SettingField = "captain"
	FieldTeamOne         SettingField = "team_one"
	FieldTeamTwo         SettingField = "team_two"
	FieldMinimumTeamSize SettingField = "minimum_team_size"
)

// SettingFields lists every field in display order.
var SettingFields = []SettingField{
	FieldLobby,
	FieldCaptain,
	FieldTeamOne,
	FieldTeamTwo,
	FieldMinimumTeamSize,
}

var fieldAliases = map[string]SettingField{
	"lobby":             FieldLobby,
	"channel":           FieldLobby,
	"captain":           FieldCaptain,
	"team_one":          FieldTeamOne,
	"team1":             FieldTeamOne,
	"team_two":          FieldTeamTwo,
	"team2":             FieldTeamTwo,
	"minimum_team_size": FieldMinimumTeamSize,
	"size":              FieldMinimumTeamSize,
}

// ParseSettingField accepts the canonical field names and their short
// command aliases ("channel", "team1", "team2", "size").
func ParseSettingField(name string) (SettingField, bool) {
	f, ok := fieldAliases[name]
	return f, ok
}

// IsChannel reports whether the field holds a voice channel id.
func (f SettingField) IsChannel() bool {
	return f == FieldLobby || f == FieldTeamOne || f == FieldTeamTwo
}
