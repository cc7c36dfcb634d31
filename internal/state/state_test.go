package state

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
)

func TestCloneIsIndependent(t *testing.T) {
	addr := chain.NewAddress()
	s := New()
	s.Users[addr] = &model.User{UID: addr, Fullname: "John Doe", IsActive: true}
	s.Birthdays[addr] = &model.Birthday{
		When: 946684800000,
		Goal: model.Goal{Description: "I want a job", TargetAmount: big.NewInt(100), AmountRaised: big.NewInt(1)},
	}
	s.Gifts[addr] = []model.Gift{{ID: 1, Sender: chain.NewAddress(), Recipient: addr, Amount: big.NewInt(1)}}
	s.CreditEther(addr, big.NewInt(5))
	s.ContractEther.SetInt64(5)
	s.Subscribed = append(s.Subscribed, addr)

	cp := s.Clone()

	// Mutate the clone in every sub-structure.
	cp.Users[addr].Fullname = "changed"
	cp.Birthdays[addr].Goal.AmountRaised.SetInt64(99)
	cp.Gifts[addr][0].Amount.SetInt64(99)
	cp.EtherBalances[addr].SetInt64(99)
	cp.ContractEther.SetInt64(99)
	cp.Subscribed = append(cp.Subscribed, chain.NewAddress())

	assert.Equal(t, "John Doe", s.Users[addr].Fullname)
	assert.Equal(t, int64(1), s.Birthdays[addr].Goal.AmountRaised.Int64())
	assert.Equal(t, int64(1), s.Gifts[addr][0].Amount.Int64())
	assert.Equal(t, int64(5), s.EtherBalances[addr].Int64())
	assert.Equal(t, int64(5), s.ContractEther.Int64())
	assert.Len(t, s.Subscribed, 1)
}

func TestActiveUser(t *testing.T) {
	addr := chain.NewAddress()
	s := New()

	_, ok := s.ActiveUser(addr)
	assert.False(t, ok)

	s.Users[addr] = &model.User{UID: addr, IsActive: false}
	_, ok = s.ActiveUser(addr)
	assert.False(t, ok, "inactive records are treated as nonexistent")

	s.Users[addr].IsActive = true
	u, ok := s.ActiveUser(addr)
	require.True(t, ok)
	assert.Equal(t, addr, u.UID)
}

func TestBalanceDefaults(t *testing.T) {
	s := New()
	addr := chain.NewAddress()
	assert.Equal(t, int64(0), s.EtherBalance(addr).Int64())
	assert.Equal(t, int64(0), s.TokenBalance(addr).Int64())

	s.CreditEther(addr, big.NewInt(3))
	s.CreditEther(addr, big.NewInt(4))
	assert.Equal(t, int64(7), s.EtherBalance(addr).Int64())
}
