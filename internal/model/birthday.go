package model

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// TimelineEntry marks one annual recurrence of a birthday. The sequence is
// append-only; no dedup is performed.
type TimelineEntry struct {
	CreatedAt int64 `json:"created_at"`
}

// Goal is a funding target attached to a birthday. Gifts add to AmountRaised
// with no cap; only withdrawal is gated on reaching TargetAmount.
type Goal struct {
	CreatedAt    int64    `json:"created_at"`
	Description  string   `json:"description"`
	TargetAmount *big.Int `json:"target_amount"`
	AmountRaised *big.Int `json:"amount_raised"`
}

// Clone returns an independent copy.
func (g Goal) Clone() Goal {
	g.TargetAmount = chain.CopyAmount(g.TargetAmount)
	g.AmountRaised = chain.CopyAmount(g.AmountRaised)
	return g
}

// ZeroGoal is the normalized empty goal returned for users who have a
// birthday but never set a goal.
func ZeroGoal() Goal {
	return Goal{TargetAmount: new(big.Int), AmountRaised: new(big.Int)}
}

// Birthday is the single active birthday of a user. ID is reserved for
// future multiplicity; in the current model it is always 0.
type Birthday struct {
	ID        uint64          `json:"id"`
	CreatedAt int64           `json:"created_at"`
	When      int64           `json:"when"`
	Goal      Goal            `json:"goal"`
	Timeline  []TimelineEntry `json:"timeline"`
}

// Clone returns an independent copy.
func (b *Birthday) Clone() *Birthday {
	cp := *b
	cp.Goal = b.Goal.Clone()
	cp.Timeline = append([]TimelineEntry(nil), b.Timeline...)
	return &cp
}

// ZeroBirthday is the normalized empty record returned for users who have no
// birthday yet.
func ZeroBirthday() Birthday {
	return Birthday{Goal: ZeroGoal(), Timeline: []TimelineEntry{}}
}

// HasGoal reports whether a goal has ever been set on this birthday.
func (b *Birthday) HasGoal() bool {
	return b.Goal.CreatedAt != 0
}
