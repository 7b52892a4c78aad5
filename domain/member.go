// Package domain contains the core concepts of the team bot.
// No platform, storage or transport logic should be added here.
package domain

type MemberID string

type ChannelID string

type RoleID string

// Member is a user currently present in a voice channel.
type Member struct {
	ID          MemberID
	DisplayName string
}

func NewMember(id MemberID, displayName string) Member {
	return Member{ID: id, DisplayName: displayName}
}

// Name falls back to the id when the platform gave no display name.
func (m Member) Name() string {
	if m.DisplayName == "" {
		return string(m.ID)
	}
	return m.DisplayName
}

// Invoker is the user who issued a command, with the authorization inputs
// already resolved by the platform layer.
type Invoker struct {
	ID            MemberID
	Administrator bool
	Roles         []RoleID
}
