package domain

import "time"

// IncomingMessage is a chat message as seen by the command layer.
type IncomingMessage struct {
	GuildID   string
	ChannelID string
	AuthorID  MemberID
	Content   string
	CreatedAt time.Time
}
