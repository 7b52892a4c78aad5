package services

import (
	"math/rand/v2"
	"slices"
	"team-bot/domain"

	"github.com/samber/lo"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ShuffleFunc adapts a function to Shuffler.
type ShuffleFunc func(n int, swap func(i, j int))

func (f ShuffleFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// DefaultShuffler draws from the global source, which is safe for concurrent
// splits in different guilds.
var DefaultShuffler Shuffler = ShuffleFunc(rand.Shuffle)

// PartitionTeams shuffles a copy of roster and cuts it in two: the first
// n - n/2 members form team one, the remaining n/2 team two.
func PartitionTeams(roster []domain.Member, shuffler Shuffler) domain.Partition {
	shuffled := slices.Clone(roster)
	shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	cut := len(shuffled) - len(shuffled)/2
	return domain.Partition{
		TeamOne: shuffled[:cut:cut],
		TeamTwo: shuffled[cut:],
	}
}

// UniqueRoster drops repeated member ids, keeping the first occurrence.
func UniqueRoster(roster []domain.Member) []domain.Member {
	return lo.UniqBy(roster, func(m domain.Member) domain.MemberID {
		return m.ID
	})
}
