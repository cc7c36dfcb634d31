// Package state holds the shared storage region all facets read and write.
// No facet owns it; each touches only the sub-structures it is responsible
// for, enforced by convention rather than any runtime partition.
package state

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Platform holds the defaults seeded by the init module during the bootstrap
// cut.
type Platform struct {
	Owner       chain.Address
	FeeToken    chain.Address
	FeePercent  uint8
	Initialized bool
}

// State is the single logical storage layout shared by every facet, keyed
// primarily by account address.
type State struct {
	Users         map[chain.Address]*model.User
	Birthdays     map[chain.Address]*model.Birthday
	Gifts         map[chain.Address][]model.Gift
	Messages      map[chain.Address][]model.Message
	Notifications map[chain.Address][]model.Notification
	Subscriptions map[chain.Address]*model.Subscription
	EtherBalances map[chain.Address]*big.Int
	TokenBalances map[chain.Address]*big.Int
	Subscribed    []chain.Address

	Platform Platform

	// ContractEther is the ether held by the proxy itself: deposits from
	// payable calls minus withdrawals.
	ContractEther *big.Int
}

// New returns an empty storage region.
func New() *State {
	return &State{
		Users:         make(map[chain.Address]*model.User),
		Birthdays:     make(map[chain.Address]*model.Birthday),
		Gifts:         make(map[chain.Address][]model.Gift),
		Messages:      make(map[chain.Address][]model.Message),
		Notifications: make(map[chain.Address][]model.Notification),
		Subscriptions: make(map[chain.Address]*model.Subscription),
		EtherBalances: make(map[chain.Address]*big.Int),
		TokenBalances: make(map[chain.Address]*big.Int),
		ContractEther: new(big.Int),
	}
}

// Clone deep-copies the whole region. The router snapshots state before each
// call so a failed call rolls back without partial mutations.
func (s *State) Clone() *State {
	cp := New()
	for a, u := range s.Users {
		cp.Users[a] = u.Clone()
	}
	for a, b := range s.Birthdays {
		cp.Birthdays[a] = b.Clone()
	}
	for a, gifts := range s.Gifts {
		out := make([]model.Gift, len(gifts))
		for i, g := range gifts {
			out[i] = g.Clone()
		}
		cp.Gifts[a] = out
	}
	for a, msgs := range s.Messages {
		cp.Messages[a] = append([]model.Message(nil), msgs...)
	}
	for a, ns := range s.Notifications {
		cp.Notifications[a] = append([]model.Notification(nil), ns...)
	}
	for a, sub := range s.Subscriptions {
		cp.Subscriptions[a] = sub.Clone()
	}
	for a, v := range s.EtherBalances {
		cp.EtherBalances[a] = chain.CopyAmount(v)
	}
	for a, v := range s.TokenBalances {
		cp.TokenBalances[a] = chain.CopyAmount(v)
	}
	cp.Subscribed = append([]chain.Address(nil), s.Subscribed...)
	cp.Platform = s.Platform
	cp.ContractEther = chain.CopyAmount(s.ContractEther)
	return cp
}

// ActiveUser returns the user record for addr, treating inactive records as
// nonexistent.
func (s *State) ActiveUser(addr chain.Address) (*model.User, bool) {
	u, ok := s.Users[addr]
	if !ok || !u.IsActive {
		return nil, false
	}
	return u, true
}

// EtherBalance returns the accrued ether balance of addr, defaulting to zero.
func (s *State) EtherBalance(addr chain.Address) *big.Int {
	return chain.CopyAmount(s.EtherBalances[addr])
}

// TokenBalance returns the accrued BOC token balance of addr, defaulting to
// zero.
func (s *State) TokenBalance(addr chain.Address) *big.Int {
	return chain.CopyAmount(s.TokenBalances[addr])
}

// CreditEther adds amount to addr's accrued ether balance.
func (s *State) CreditEther(addr chain.Address, amount *big.Int) {
	cur := s.EtherBalances[addr]
	if cur == nil {
		cur = new(big.Int)
	}
	s.EtherBalances[addr] = new(big.Int).Add(cur, amount)
}

// CreditToken adds amount to addr's accrued token balance.
func (s *State) CreditToken(addr chain.Address, amount *big.Int) {
	cur := s.TokenBalances[addr]
	if cur == nil {
		cur = new(big.Int)
	}
	s.TokenBalances[addr] = new(big.Int).Add(cur, amount)
}
