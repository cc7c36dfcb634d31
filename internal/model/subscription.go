package model

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// Subscription records a one-way "featured" purchase. At most one per user;
// there is no unsubscribe or expiry path.
type Subscription struct {
	ID        uint64   `json:"id"`
	CreatedAt int64    `json:"created_at"`
	Amount    *big.Int `json:"amount"`
}

// Clone returns an independent copy.
func (s *Subscription) Clone() *Subscription {
	cp := *s
	cp.Amount = chain.CopyAmount(s.Amount)
	return &cp
}

// ZeroSubscription is the normalized empty record for users who never
// subscribed.
func ZeroSubscription() Subscription {
	return Subscription{Amount: new(big.Int)}
}
