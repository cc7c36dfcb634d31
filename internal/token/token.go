// Package token implements the BOC platform token: an ERC-20-style ledger
// with balances and spending allowances. The diamond pulls gift and
// subscription payments from callers via TransferFrom, so a caller must
// approve the proxy address first.
package token

import (
	"errors"
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

var (
	ErrInsufficientBalance   = errors.New("BOC Token: Insufficient balance!")
	ErrInsufficientAllowance = errors.New("BOC Token: Insufficient allowance!")
	ErrOwnerOnly             = errors.New("BOC Token: Owner only operation!")
	ErrZeroAmount            = errors.New("BOC Token: Amount must be greater than zero!")
)

// Token is the BOC token ledger. It lives outside the diamond's shared
// storage but joins the same transaction: the router snapshots it alongside
// state so a reverted call also reverts token movements.
type Token struct {
	addr        chain.Address
	owner       chain.Address
	name        string
	symbol      string
	decimals    uint8
	totalSupply *big.Int
	balances    map[chain.Address]*big.Int
	allowances  map[chain.Address]map[chain.Address]*big.Int
}

// New deploys the token at a fresh address and mints the initial supply to
// the owner.
func New(owner chain.Address, initialSupply *big.Int) *Token {
	t := &Token{
		addr:        chain.NewAddress(),
		owner:       owner,
		name:        "Birthday On-Chain",
		symbol:      "BOC",
		decimals:    18,
		totalSupply: new(big.Int),
		balances:    make(map[chain.Address]*big.Int),
		allowances:  make(map[chain.Address]map[chain.Address]*big.Int),
	}
	if chain.IsPositive(initialSupply) {
		t.mint(owner, initialSupply)
	}
	return t
}

func (t *Token) Address() chain.Address { return t.addr }
func (t *Token) Owner() chain.Address   { return t.owner }
func (t *Token) Name() string           { return t.name }
func (t *Token) Symbol() string         { return t.symbol }
func (t *Token) Decimals() uint8        { return t.decimals }

// TotalSupply returns the minted supply.
func (t *Token) TotalSupply() *big.Int {
	return chain.CopyAmount(t.totalSupply)
}

// BalanceOf returns the balance of addr, defaulting to zero.
func (t *Token) BalanceOf(addr chain.Address) *big.Int {
	return chain.CopyAmount(t.balances[addr])
}

// Allowance returns what spender may pull from owner.
func (t *Token) Allowance(owner, spender chain.Address) *big.Int {
	if byOwner, ok := t.allowances[owner]; ok {
		return chain.CopyAmount(byOwner[spender])
	}
	return new(big.Int)
}

// Approve sets spender's allowance over caller's tokens.
func (t *Token) Approve(caller, spender chain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrZeroAmount
	}
	byOwner, ok := t.allowances[caller]
	if !ok {
		byOwner = make(map[chain.Address]*big.Int)
		t.allowances[caller] = byOwner
	}
	byOwner[spender] = chain.CopyAmount(amount)
	return nil
}

// Transfer moves amount from caller to recipient.
func (t *Token) Transfer(caller, to chain.Address, amount *big.Int) error {
	if !chain.IsPositive(amount) {
		return ErrZeroAmount
	}
	return t.move(caller, to, amount)
}

// TransferFrom moves amount from `from` to `to` on behalf of spender,
// consuming spender's allowance.
func (t *Token) TransferFrom(spender, from, to chain.Address, amount *big.Int) error {
	if !chain.IsPositive(amount) {
		return ErrZeroAmount
	}
	allowance := t.Allowance(from, spender)
	if allowance.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if err := t.move(from, to, amount); err != nil {
		return err
	}
	t.allowances[from][spender] = allowance.Sub(allowance, amount)
	return nil
}

// Mint creates new supply; owner only.
func (t *Token) Mint(caller, to chain.Address, amount *big.Int) error {
	if caller != t.owner {
		return ErrOwnerOnly
	}
	if !chain.IsPositive(amount) {
		return ErrZeroAmount
	}
	t.mint(to, amount)
	return nil
}

func (t *Token) mint(to chain.Address, amount *big.Int) {
	t.totalSupply.Add(t.totalSupply, amount)
	t.credit(to, amount)
}

func (t *Token) move(from, to chain.Address, amount *big.Int) error {
	bal := t.balances[from]
	if bal == nil || bal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	t.balances[from] = new(big.Int).Sub(bal, amount)
	t.credit(to, amount)
	return nil
}

func (t *Token) credit(to chain.Address, amount *big.Int) {
	cur := t.balances[to]
	if cur == nil {
		cur = new(big.Int)
	}
	t.balances[to] = new(big.Int).Add(cur, amount)
}

// Clone deep-copies the ledger for the router's transaction snapshot.
func (t *Token) Clone() *Token {
	cp := &Token{
		addr:        t.addr,
		owner:       t.owner,
		name:        t.name,
		symbol:      t.symbol,
		decimals:    t.decimals,
		totalSupply: chain.CopyAmount(t.totalSupply),
		balances:    make(map[chain.Address]*big.Int, len(t.balances)),
		allowances:  make(map[chain.Address]map[chain.Address]*big.Int, len(t.allowances)),
	}
	for a, v := range t.balances {
		cp.balances[a] = chain.CopyAmount(v)
	}
	for owner, byOwner := range t.allowances {
		inner := make(map[chain.Address]*big.Int, len(byOwner))
		for spender, v := range byOwner {
			inner[spender] = chain.CopyAmount(v)
		}
		cp.allowances[owner] = inner
	}
	return cp
}
