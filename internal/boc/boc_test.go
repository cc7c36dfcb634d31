package boc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/boc"
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/facet"
)

func TestDeploy(t *testing.T) {
	deployer := chain.NewAddress()
	c, err := boc.Deploy(boc.Config{Deployer: deployer})
	require.NoError(t, err)

	assert.Equal(t, deployer, c.Diamond.Owner())
	assert.True(t, c.State.Platform.Initialized)
	assert.Equal(t, c.Token.Address(), c.State.Platform.FeeToken)
	assert.Equal(t, boc.DefaultFeePercent, c.State.Platform.FeePercent)
	assert.Equal(t, 0, c.Token.TotalSupply().Cmp(c.Token.BalanceOf(deployer)), "initial supply goes to the deployer")

	routes := c.Diamond.Routes()
	assert.Len(t, routes, 6)

	// The init selector must not stay routed after bootstrap.
	_, err = c.Diamond.Call(deployer, nil, facet.SelInit, nil)
	assert.ErrorIs(t, err, diamond.ErrFunctionNotFound)
}

func TestDeployDefaults(t *testing.T) {
	c, err := boc.Deploy(boc.Config{})
	require.NoError(t, err)
	assert.NotEqual(t, chain.Address(""), c.Diamond.Owner())
	assert.True(t, c.Token.TotalSupply().Sign() > 0)
}
