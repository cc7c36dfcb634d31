package facet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
)

func TestOwner(t *testing.T) {
	f := deploy(t)

	got := f.mustCall(chain.NewAddress(), nil, facet.SelOwner, nil).Ret.(chain.Address)
	assert.Equal(t, f.deployer, got)
}

func TestTransferOwnership(t *testing.T) {
	f := deploy(t)
	next := chain.NewAddress()

	_, err := f.call(chain.NewAddress(), nil, facet.SelTransferOwnership, model.TransferOwnershipArgs{NewOwner: next})
	assert.ErrorIs(t, err, facet.ErrOwnerOnly)

	receipt := f.mustCall(f.deployer, nil, facet.SelTransferOwnership, model.TransferOwnershipArgs{NewOwner: next})
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, model.EventOwnershipMoved, receipt.Events[0].Name)

	got := f.mustCall(chain.NewAddress(), nil, facet.SelOwner, nil).Ret.(chain.Address)
	assert.Equal(t, next, got)

	// Cut authority follows the storage slot.
	err = f.chain.Diamond.Cut(f.deployer, []diamond.FacetCut{{
		Target:    chain.ZeroAddress,
		Action:    diamond.Remove,
		Selectors: []chain.Selector{facet.SelOwner},
	}}, nil)
	assert.ErrorIs(t, err, diamond.ErrOwnerOnly)

	require.NoError(t, f.chain.Diamond.Cut(next, []diamond.FacetCut{{
		Target:    chain.ZeroAddress,
		Action:    diamond.Remove,
		Selectors: []chain.Selector{facet.SelOwner},
	}}, nil))
	_, err = f.call(chain.NewAddress(), nil, facet.SelOwner, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound)
}

func TestInitRunsOnce(t *testing.T) {
	f := deploy(t)

	initFacet := facet.NewInit()
	f.chain.Diamond.Deploy(initFacet)

	err := f.chain.Diamond.Cut(f.deployer, nil, &diamond.InitCall{
		Target:   initFacet.Address(),
		Selector: facet.SelInit,
		Arg:      model.InitArgs{Owner: chain.NewAddress()},
	})
	assert.ErrorIs(t, err, facet.ErrAlreadyInit)

	got := f.mustCall(chain.NewAddress(), nil, facet.SelOwner, nil).Ret.(chain.Address)
	assert.Equal(t, f.deployer, got, "a replayed init must not reseed storage")
}
