package facet_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/boc"
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
)

func eth(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// fixture is a freshly deployed platform with a pinned clock.
type fixture struct {
	t        *testing.T
	chain    *boc.Chain
	deployer chain.Address
	now      time.Time
}

func deploy(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{t: t, deployer: chain.NewAddress(), now: time.Unix(1_700_000_000, 0)}
	c, err := boc.Deploy(boc.Config{
		Deployer: f.deployer,
		Clock:    func() time.Time { return f.now },
	})
	require.NoError(t, err)
	f.chain = c
	return f
}

func (f *fixture) call(caller chain.Address, value *big.Int, sel chain.Selector, arg any) (*chain.Receipt, error) {
	return f.chain.Diamond.Call(caller, value, sel, arg)
}

func (f *fixture) mustCall(caller chain.Address, value *big.Int, sel chain.Selector, arg any) *chain.Receipt {
	f.t.Helper()
	receipt, err := f.call(caller, value, sel, arg)
	require.NoError(f.t, err)
	return receipt
}

// newUser registers an account and returns its address.
func (f *fixture) newUser(fullname string) chain.Address {
	f.t.Helper()
	addr := chain.NewAddress()
	f.mustCall(addr, nil, facet.SelCreateUser, model.CreateUserArgs{
		Fullname: fullname,
		Nickname: fullname,
		Gender:   "other",
		Currency: model.CurrencyEther,
	})
	return addr
}

// fundTokens moves BOC from the deployer's initial supply and approves the
// proxy to pull the same amount.
func (f *fixture) fundTokens(addr chain.Address, amount *big.Int) {
	f.t.Helper()
	require.NoError(f.t, f.chain.Token.Transfer(f.deployer, addr, amount))
	require.NoError(f.t, f.chain.Token.Approve(addr, f.chain.Diamond.Address(), amount))
}
