// Package diamond implements the selector router at the heart of the
// platform: one proxy address, many facets, one shared storage region.
// Every externally callable operation is dispatched by selector to the facet
// registered for it, and each call runs as an all-or-nothing transaction
// over the shared state and the token ledger.
package diamond

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/state"
	"github.com/birthday-onchain/boc-api/internal/token"
)

var (
	ErrFunctionNotFound = errors.New("Diamond: Function does not exist!")
	ErrOwnerOnly        = errors.New("Diamond: Owner only operation!")
	ErrUnknownFacet     = errors.New("Diamond: Facet not deployed!")
	ErrSelectorExists   = errors.New("Diamond: Selector already mapped!")
	ErrSelectorMissing  = errors.New("Diamond: Selector not mapped!")
	ErrRemoveTarget     = errors.New("Diamond: Remove target must be the zero address!")
	ErrNoSelectors      = errors.New("Diamond: Cut entry has no selectors!")
)

// Ctx is the call context handed to facet handlers: caller identity,
// attached value, the block-style timestamp, and the shared mutable state.
// Handlers report side effects through Emit; emitted events only surface if
// the call commits.
type Ctx struct {
	Caller chain.Address
	Value  *big.Int
	Now    int64
	Proxy  chain.Address
	State  *state.State
	Token  *token.Token

	events []chain.Event
}

// Emit records an event for the call's receipt.
func (c *Ctx) Emit(name string, payload any) {
	c.events = append(c.events, chain.Event{Name: name, Payload: payload, EmittedAt: c.Now})
}

// Handler executes one operation against the shared state.
type Handler func(c *Ctx, arg any) (any, error)

// Facet is an independently deployable unit exposing a disjoint selector set.
type Facet interface {
	Address() chain.Address
	Handlers() map[chain.Selector]Handler
}

// Diamond is the proxy: the single address clients call. It owns the
// selector routing table and serializes every call, matching the underlying
// ledger's sequential transaction execution.
type Diamond struct {
	mu sync.Mutex

	addr   chain.Address
	owner  chain.Address
	routes map[chain.Selector]chain.Address
	facets map[chain.Address]Facet

	st    *state.State
	tok   *token.Token
	clock func() time.Time
}

// Option configures a Diamond.
type Option func(*Diamond)

// WithClock overrides the transaction timestamp source. Tests use it to pin
// block time.
func WithClock(clock func() time.Time) Option {
	return func(d *Diamond) { d.clock = clock }
}

// New constructs the proxy with the deploying owner, the shared storage
// region, and the token ledger that joins its transactions.
func New(owner chain.Address, st *state.State, tok *token.Token, opts ...Option) *Diamond {
	d := &Diamond{
		addr:   chain.NewAddress(),
		owner:  owner,
		routes: make(map[chain.Selector]chain.Address),
		facets: make(map[chain.Address]Facet),
		st:     st,
		tok:    tok,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Address returns the proxy address clients (and the token allowance flow)
// target.
func (d *Diamond) Address() chain.Address { return d.addr }

// Owner returns the address allowed to cut facets. Before storage is
// initialized this is the deploying address; afterwards ownership lives in
// the shared storage region so an ownership facet can hand it over.
func (d *Diamond) Owner() chain.Address {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ownerAddr()
}

// Locked runs fn while holding the call lock. The token ledger is snapshot
// together with storage on every call, so anything touching it from outside
// the router must go through here.
func (d *Diamond) Locked(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

func (d *Diamond) ownerAddr() chain.Address {
	if d.st.Platform.Initialized {
		return d.st.Platform.Owner
	}
	return d.owner
}

// Deploy registers facet code at its address so cuts can reference it.
// Deploying does not route anything; selectors go live only through Cut.
func (d *Diamond) Deploy(f Facet) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.facets[f.Address()] = f
}

// Call dispatches one operation. Unknown selectors fail with
// ErrFunctionNotFound; otherwise the routed handler runs inside a
// transaction: on error every mutation of state and token is rolled back and
// the reason is surfaced verbatim, on success the receipt carries the
// handler's return value and emitted events.
func (d *Diamond) Call(caller chain.Address, value *big.Int, sel chain.Selector, arg any) (*chain.Receipt, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handler, err := d.route(sel)
	if err != nil {
		return nil, err
	}
	return d.transact(caller, value, handler, arg)
}

func (d *Diamond) route(sel chain.Selector) (Handler, error) {
	facetAddr, ok := d.routes[sel]
	if !ok {
		return nil, ErrFunctionNotFound
	}
	facet, ok := d.facets[facetAddr]
	if !ok {
		return nil, ErrFunctionNotFound
	}
	handler, ok := facet.Handlers()[sel]
	if !ok {
		return nil, ErrFunctionNotFound
	}
	return handler, nil
}

// transact runs handler against the live state under a snapshot: any error
// restores both the storage region and the token ledger in place, so
// pointers held by the rest of the process stay valid.
func (d *Diamond) transact(caller chain.Address, value *big.Int, handler Handler, arg any) (*chain.Receipt, error) {
	stSnap := d.st.Clone()
	tokSnap := d.tok.Clone()

	ctx := &Ctx{
		Caller: caller,
		Value:  chain.CopyAmount(value),
		Now:    d.clock().Unix(),
		Proxy:  d.addr,
		State:  d.st,
		Token:  d.tok,
	}

	ret, err := handler(ctx, arg)
	if err != nil {
		*d.st = *stSnap
		*d.tok = *tokSnap
		return nil, err
	}

	return &chain.Receipt{TxID: uuid.New(), Ret: ret, Events: ctx.events}, nil
}

// SelectorsOf returns a facet's selector set in deterministic order, the way
// deployment scripts enumerate a facet's ABI.
func SelectorsOf(f Facet) []chain.Selector {
	sels := make([]chain.Selector, 0, len(f.Handlers()))
	for sel := range f.Handlers() {
		sels = append(sels, sel)
	}
	sort.Slice(sels, func(i, j int) bool { return sels[i] < sels[j] })
	return sels
}

// FacetRoute describes one registered facet and the selectors routed to it,
// for the loupe-style admin read.
type FacetRoute struct {
	Facet     chain.Address    `json:"facet"`
	Selectors []chain.Selector `json:"selectors"`
}

// Routes returns the current routing table grouped by facet.
func (d *Diamond) Routes() []FacetRoute {
	d.mu.Lock()
	defer d.mu.Unlock()

	byFacet := make(map[chain.Address][]chain.Selector)
	for sel, facetAddr := range d.routes {
		byFacet[facetAddr] = append(byFacet[facetAddr], sel)
	}
	out := make([]FacetRoute, 0, len(byFacet))
	for facetAddr, sels := range byFacet {
		sort.Slice(sels, func(i, j int) bool { return sels[i] < sels[j] })
		out = append(out, FacetRoute{Facet: facetAddr, Selectors: sels})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Facet < out[j].Facet })
	return out
}

func selErr(base error, sel chain.Selector) error {
	return fmt.Errorf("%w (%s)", base, sel)
}
