package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type RelocationStatus string

const (
	RelocationMoved   RelocationStatus = "moved"
	RelocationSkipped RelocationStatus = "skipped"
	RelocationFailed  RelocationStatus = "failed"
)

// Relocation is the outcome of moving one member.
type Relocation struct {
	Member  Member
	Team    Team
	Channel ChannelID
	Status  RelocationStatus
	Detail  string
}

// SplitResult is what a split reports back to the presentation layer.
// Relocations are in the order the moves were attempted. When the split was
// aborted, members after the abort point have no relocation entry.
type SplitResult struct {
	ID          uuid.UUID
	StartedAt   time.Time
	Partition   Partition
	Relocations []Relocation
	Aborted     bool
	AbortReason error
}

func (r SplitResult) Count(status RelocationStatus) int {
	return lo.CountBy(r.Relocations, func(item Relocation) bool {
		return item.Status == status
	})
}

// Pending lists the members that never got a move attempt.
func (r SplitResult) Pending() []Member {
	attempted := lo.SliceToMap(r.Relocations, func(item Relocation) (MemberID, struct{}) {
		return item.Member.ID, struct{}{}
	})
	all := append(append([]Member{}, r.Partition.TeamOne...), r.Partition.TeamTwo...)
	return lo.Filter(all, func(m Member, _ int) bool {
		_, ok := attempted[m.ID]
		return !ok
	})
}

// SplitCommand asks for the lobby to be split.
// A nil Roster means the roster is read from the configured lobby channel.
type SplitCommand struct {
	Invoker Invoker
	Roster  []Member
}

// SettingCommand changes one setting. A nil Value clears it.
type SettingCommand struct {
	Invoker Invoker
	Field   SettingField
	Value   *string
}
