package model

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// Currency selects which balance a user's gifts and subscriptions settle in.
type Currency uint8

const (
	CurrencyToken Currency = 0 // platform BOC token
	CurrencyEther Currency = 1 // native ether
)

// User is a platform account. A record with IsActive == false is treated as
// nonexistent by every facet.
type User struct {
	UID             chain.Address `json:"uid"`
	Fullname        string        `json:"fullname"`
	Nickname        string        `json:"nickname"`
	Gender          string        `json:"gender"`
	Currency        Currency      `json:"currency"`
	Photo           string        `json:"photo"`
	JoinedDate      int64         `json:"joined_date"`
	IsActive        bool          `json:"is_active"`
	HasSubscription bool          `json:"has_subscription"`
}

// Clone returns an independent copy.
func (u *User) Clone() *User {
	cp := *u
	return &cp
}

// CompleteUser is the Platform facet's aggregate projection: everything the
// frontend needs about one account in a single call.
type CompleteUser struct {
	User          User           `json:"user"`
	Birthdays     Birthday       `json:"birthdays"`
	Messages      []Message      `json:"messages"`
	Gifts         []Gift         `json:"gifts"`
	Notifications []Notification `json:"notifications"`
	Goal          Goal           `json:"goal"`
	Subscriptions Subscription   `json:"subscriptions"`
	Balance       *big.Int       `json:"balance"`
	TokenBalance  *big.Int       `json:"token_balance"`
}
