package facet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
)

func TestGetCompleteUserFresh(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")

	got := f.mustCall(alice, nil, facet.SelGetCompleteUser, alice).Ret.(model.CompleteUser)
	assert.Equal(t, alice, got.User.UID)
	assert.Empty(t, got.Messages)
	assert.Empty(t, got.Gifts)
	assert.Empty(t, got.Notifications)
	assert.Equal(t, int64(0), got.Birthdays.CreatedAt)
	assert.Equal(t, int64(0), got.Goal.CreatedAt)
	assert.Equal(t, uint64(0), got.Subscriptions.ID)
	assert.Equal(t, int64(0), got.Balance.Int64())
	assert.Equal(t, int64(0), got.TokenBalance.Int64())
}

func TestGetCompleteUserPopulated(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	bob := f.newUser("Bob")

	f.mustCall(alice, nil, facet.SelCreateBirthdayAndGoal, model.CreateBirthdayAndGoalArgs{
		When:         when,
		Description:  "fund",
		TargetAmount: eth(10),
	})
	f.mustCall(bob, nil, facet.SelSendMessage, model.SendMessageArgs{Recipient: alice, Message: "hey"})
	f.mustCall(bob, eth(2), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})
	f.mustCall(alice, eth(1), facet.SelSubscribeWithEther, nil)

	got := f.mustCall(bob, nil, facet.SelGetCompleteUser, alice).Ret.(model.CompleteUser)
	require.Len(t, got.Messages, 1)
	require.Len(t, got.Gifts, 1)
	require.Len(t, got.Notifications, 2)
	assert.Equal(t, when, got.Birthdays.When)
	assert.Equal(t, "fund", got.Goal.Description)
	assert.Equal(t, 0, eth(2).Cmp(got.Goal.AmountRaised))
	assert.Equal(t, uint64(1), got.Subscriptions.ID)
	assert.Equal(t, 0, eth(2).Cmp(got.Balance))
	assert.True(t, got.User.HasSubscription)
}

func TestGetCompleteUserUnknown(t *testing.T) {
	f := deploy(t)

	_, err := f.call(chain.NewAddress(), nil, facet.SelGetCompleteUser, chain.NewAddress())
	assert.ErrorIs(t, err, facet.ErrUserNotFound)
}
