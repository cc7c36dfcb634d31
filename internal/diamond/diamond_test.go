package diamond_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/state"
	"github.com/birthday-onchain/boc-api/internal/token"
)

var (
	selPing  = chain.Sel("ping()")
	selStore = chain.Sel("store(string)")
	selBoom  = chain.Sel("boom(string)")
	selInit  = chain.Sel("init(address)")
)

var errBoom = errors.New("stub: boom")

// stubFacet registers configurable handlers under a fresh facet address.
type stubFacet struct {
	addr     chain.Address
	handlers map[chain.Selector]diamond.Handler
}

func newStubFacet(handlers map[chain.Selector]diamond.Handler) *stubFacet {
	return &stubFacet{addr: chain.NewAddress(), handlers: handlers}
}

func (f *stubFacet) Address() chain.Address                        { return f.addr }
func (f *stubFacet) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func pingV1(c *diamond.Ctx, arg any) (any, error) { return "v1", nil }
func pingV2(c *diamond.Ctx, arg any) (any, error) { return "v2", nil }

// store writes a user record and emits an event, then optionally fails.
func storeAndMaybeBoom(fail bool) diamond.Handler {
	return func(c *diamond.Ctx, arg any) (any, error) {
		addr := chain.Address(arg.(string))
		c.State.Users[addr] = &model.User{UID: addr, IsActive: true}
		c.Emit("Stored", arg)
		if fail {
			return nil, errBoom
		}
		return nil, nil
	}
}

func newTestDiamond(t *testing.T) (*diamond.Diamond, chain.Address, *state.State) {
	t.Helper()
	owner := chain.NewAddress()
	st := state.New()
	tok := token.New(owner, big.NewInt(1000))
	return diamond.New(owner, st, tok), owner, st
}

func TestCallUnknownSelector(t *testing.T) {
	d, _, _ := newTestDiamond(t)
	_, err := d.Call(chain.NewAddress(), nil, selPing, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound)
}

func TestCutOwnerOnly(t *testing.T) {
	d, _, _ := newTestDiamond(t)
	f := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1})
	d.Deploy(f)

	cuts := []diamond.FacetCut{{Target: f.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}}}
	err := d.Cut(chain.NewAddress(), cuts, nil)
	assert.ErrorIs(t, err, diamond.ErrOwnerOnly)

	_, err = d.Call(chain.NewAddress(), nil, selPing, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound, "rejected cut must not route anything")
}

func TestAddRouteAndDispatch(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	f := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1})
	d.Deploy(f)

	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: f.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, nil))

	receipt, err := d.Call(chain.NewAddress(), nil, selPing, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", receipt.Ret)
}

func TestAddRejectsMappedSelector(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	f1 := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1})
	f2 := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV2})
	d.Deploy(f1)
	d.Deploy(f2)

	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: f1.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, nil))

	err := d.Cut(owner, []diamond.FacetCut{
		{Target: f2.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, nil)
	assert.ErrorIs(t, err, diamond.ErrSelectorExists, "no silent overwrite")

	receipt, err := d.Call(chain.NewAddress(), nil, selPing, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", receipt.Ret, "original facet still answers")
}

func TestReplaceRoutesToNewFacet(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	f1 := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1})
	f2 := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV2})
	d.Deploy(f1)
	d.Deploy(f2)

	err := d.Cut(owner, []diamond.FacetCut{
		{Target: f2.Address(), Action: diamond.Replace, Selectors: []chain.Selector{selPing}},
	}, nil)
	assert.ErrorIs(t, err, diamond.ErrSelectorMissing, "replace requires a mapped selector")

	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: f1.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, nil))
	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: f2.Address(), Action: diamond.Replace, Selectors: []chain.Selector{selPing}},
	}, nil))

	receipt, err := d.Call(chain.NewAddress(), nil, selPing, nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", receipt.Ret, "after replace the new facet's code executes")
}

func TestRemove(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	f := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1})
	d.Deploy(f)

	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: f.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, nil))

	err := d.Cut(owner, []diamond.FacetCut{
		{Target: f.Address(), Action: diamond.Remove, Selectors: []chain.Selector{selPing}},
	}, nil)
	assert.ErrorIs(t, err, diamond.ErrRemoveTarget)

	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: chain.ZeroAddress, Action: diamond.Remove, Selectors: []chain.Selector{selPing}},
	}, nil))

	_, err = d.Call(chain.NewAddress(), nil, selPing, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound)

	err = d.Cut(owner, []diamond.FacetCut{
		{Target: chain.ZeroAddress, Action: diamond.Remove, Selectors: []chain.Selector{selPing}},
	}, nil)
	assert.ErrorIs(t, err, diamond.ErrSelectorMissing)
}

func TestCutInitAtomicity(t *testing.T) {
	d, owner, st := newTestDiamond(t)
	target := chain.NewAddress()

	facet := newStubFacet(map[chain.Selector]diamond.Handler{
		selPing:  pingV1,
		selStore: storeAndMaybeBoom(false),
		selBoom:  storeAndMaybeBoom(true),
	})
	d.Deploy(facet)

	// A failing init must leave neither routes nor state behind.
	err := d.Cut(owner, []diamond.FacetCut{
		{Target: facet.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, &diamond.InitCall{Target: facet.Address(), Selector: selBoom, Arg: string(target)})
	assert.ErrorIs(t, err, errBoom)

	_, routed := st.ActiveUser(target)
	assert.False(t, routed, "init mutations rolled back")
	_, err = d.Call(chain.NewAddress(), nil, selPing, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound, "selector mappings rolled back")

	// A succeeding init lands together with the cut.
	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: facet.Address(), Action: diamond.Add, Selectors: []chain.Selector{selPing}},
	}, &diamond.InitCall{Target: facet.Address(), Selector: selStore, Arg: string(target)}))

	_, seeded := st.ActiveUser(target)
	assert.True(t, seeded)
	_, err = d.Call(chain.NewAddress(), nil, selPing, nil)
	assert.NoError(t, err)
}

func TestCallRollsBackOnError(t *testing.T) {
	d, owner, st := newTestDiamond(t)
	target := chain.NewAddress()

	facet := newStubFacet(map[chain.Selector]diamond.Handler{selBoom: storeAndMaybeBoom(true)})
	d.Deploy(facet)
	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: facet.Address(), Action: diamond.Add, Selectors: []chain.Selector{selBoom}},
	}, nil))

	_, err := d.Call(chain.NewAddress(), nil, selBoom, string(target))
	assert.ErrorIs(t, err, errBoom)

	_, ok := st.ActiveUser(target)
	assert.False(t, ok, "no partial state persists after a revert")
}

func TestReceiptCarriesEvents(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	target := chain.NewAddress()

	facet := newStubFacet(map[chain.Selector]diamond.Handler{selStore: storeAndMaybeBoom(false)})
	d.Deploy(facet)
	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: facet.Address(), Action: diamond.Add, Selectors: []chain.Selector{selStore}},
	}, nil))

	receipt, err := d.Call(chain.NewAddress(), nil, selStore, string(target))
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, "Stored", receipt.Events[0].Name)
	assert.NotEqual(t, "", receipt.TxID.String())
}

func TestRoutesListing(t *testing.T) {
	d, owner, _ := newTestDiamond(t)
	facet := newStubFacet(map[chain.Selector]diamond.Handler{selPing: pingV1, selStore: storeAndMaybeBoom(false)})
	d.Deploy(facet)
	require.NoError(t, d.Cut(owner, []diamond.FacetCut{
		{Target: facet.Address(), Action: diamond.Add, Selectors: diamond.SelectorsOf(facet)},
	}, nil))

	routes := d.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, facet.Address(), routes[0].Facet)
	assert.Len(t, routes[0].Selectors, 2)
}
