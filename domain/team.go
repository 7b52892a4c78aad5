package domain

type Team int

const (
	TeamOne Team = iota + 1
	TeamTwo
)

func (t Team) String() string {
	switch t {
	case TeamOne:
		return "Team One"
	case TeamTwo:
		return "Team Two"
	default:
		return "Unknown"
	}
}

// Partition holds the two teams drawn from a roster.
// Together they cover the roster exactly once.
type Partition struct {
	TeamOne []Member
	TeamTwo []Member
}

func (p Partition) Members(team Team) []Member {
	if team == TeamTwo {
		return p.TeamTwo
	}
	return p.TeamOne
}

func (p Partition) Size() int {
	return len(p.TeamOne) + len(p.TeamTwo)
}
