package model

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// Message is an interpersonal note, append-only per recipient. IDs are
// 1-based per recipient.
type Message struct {
	ID        uint64        `json:"id"`
	CreatedAt int64         `json:"created_at"`
	Sender    chain.Address `json:"sender"`
	Recipient chain.Address `json:"recipient"`
	Message   string        `json:"message"`
}

// Gift is a value transfer in ether or BOC token, append-only per recipient.
// IDs are 1-based per recipient.
type Gift struct {
	ID        uint64        `json:"id"`
	CreatedAt int64         `json:"created_at"`
	Sender    chain.Address `json:"sender"`
	Recipient chain.Address `json:"recipient"`
	Amount    *big.Int      `json:"amount"`
}

// Clone returns an independent copy.
func (g Gift) Clone() Gift {
	g.Amount = chain.CopyAmount(g.Amount)
	return g
}
