package game

import "math/rand"

// Quest is one player's randomized tour of the catalog: the nine planets in a
// random order, then the moon. Index points at the current target; Collected
// holds the planet ids already claimed.
type Quest struct {
	Order     []string `json:"order"`
	Index     int      `json:"index"`
	Collected []string `json:"collected"`
}

// NewQuest shuffles the planet ids (Fisher-Yates via rand.Shuffle) and appends
// the moon as the final deposit stop.
func NewQuest(rng *rand.Rand) Quest {
	order := make([]string, 0, len(Planets)+1)
	for _, p := range Planets {
		order = append(order, p.ID)
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	order = append(order, Moon.ID)
	return Quest{Order: order, Collected: []string{}}
}

// CurrentTarget returns the waypoint id the player must visit next.
func (q *Quest) CurrentTarget() string {
	return q.Order[q.Index]
}

func (q *Quest) HasCollected(id string) bool {
	for _, c := range q.Collected {
		if c == id {
			return true
		}
	}
	return false
}

// AllCollected reports whether every planet item has been gathered, the gate
// for depositing on the moon.
func (q *Quest) AllCollected() bool {
	for _, p := range Planets {
		if !q.HasCollected(p.ID) {
			return false
		}
	}
	return true
}
