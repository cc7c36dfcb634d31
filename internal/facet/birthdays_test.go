package facet_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
)

const when = int64(1_720_000_000)

func TestCreateBirthday(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")

	receipt := f.mustCall(alice, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, model.EventBirthdayCreated, receipt.Events[0].Name)
	payload := receipt.Events[0].Payload.(model.BirthdayCreatedEvent)
	assert.Equal(t, alice, payload.User)
	assert.Equal(t, uint64(0), payload.ID)
	assert.Equal(t, when, payload.When)

	got := f.mustCall(alice, nil, facet.SelGetUserBirthdays, alice).Ret.(model.Birthday)
	assert.Equal(t, when, got.When)
	assert.Len(t, got.Timeline, 1, "timeline is seeded with the first entry")
}

func TestCreateBirthdayRequiresUser(t *testing.T) {
	f := deploy(t)

	_, err := f.call(chain.NewAddress(), nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})
	assert.ErrorIs(t, err, facet.ErrUserNotFound)
}

func TestCreateBirthdayAndGoal(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")

	receipt := f.mustCall(alice, nil, facet.SelCreateBirthdayAndGoal, model.CreateBirthdayAndGoalArgs{
		When:         when,
		Description:  "new bike",
		TargetAmount: eth(5),
	})
	require.Len(t, receipt.Events, 2)
	assert.Equal(t, model.EventBirthdayCreated, receipt.Events[0].Name)
	assert.Equal(t, model.EventGoalCreated, receipt.Events[1].Name)

	goal := f.mustCall(alice, nil, facet.SelGetUserGoal, alice).Ret.(model.Goal)
	assert.Equal(t, "new bike", goal.Description)
	assert.Equal(t, 0, eth(5).Cmp(goal.TargetAmount))
	assert.Equal(t, int64(0), goal.AmountRaised.Int64())
}

func TestCreateTimeline(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")

	_, err := f.call(alice, nil, facet.SelCreateTimeline, model.CreateTimelineArgs{BirthdayID: 0})
	assert.ErrorIs(t, err, facet.ErrNoBirthdaysFound)

	f.mustCall(alice, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})

	_, err = f.call(alice, nil, facet.SelCreateTimeline, model.CreateTimelineArgs{BirthdayID: 7})
	assert.ErrorIs(t, err, facet.ErrInvalidBirthdayID)

	f.mustCall(alice, nil, facet.SelCreateTimeline, model.CreateTimelineArgs{BirthdayID: 0})

	got := f.mustCall(alice, nil, facet.SelGetUserBirthdays, alice).Ret.(model.Birthday)
	assert.Len(t, got.Timeline, 2)
}

func TestCreateGoal(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")

	_, err := f.call(alice, nil, facet.SelCreateGoal, model.GoalArgs{BirthdayID: 0, Description: "x", TargetAmount: eth(1)})
	assert.ErrorIs(t, err, facet.ErrNoBirthdaysFound)

	f.mustCall(alice, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})

	_, err = f.call(alice, nil, facet.SelCreateGoal, model.GoalArgs{BirthdayID: 3, Description: "x", TargetAmount: eth(1)})
	assert.ErrorIs(t, err, facet.ErrInvalidBirthdayID)

	receipt := f.mustCall(alice, nil, facet.SelCreateGoal, model.GoalArgs{
		BirthdayID:   0,
		Description:  "party fund",
		TargetAmount: eth(3),
	})
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, model.EventGoalCreated, receipt.Events[0].Name)

	goal := f.mustCall(alice, nil, facet.SelGetUserGoal, alice).Ret.(model.Goal)
	assert.Equal(t, "party fund", goal.Description)
}

func TestUpdateGoalWhileInProgress(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	f.mustCall(alice, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})
	f.mustCall(alice, nil, facet.SelCreateGoal, model.GoalArgs{BirthdayID: 0, Description: "fund", TargetAmount: eth(3)})

	// Nothing raised yet, rewriting is fine.
	f.mustCall(alice, nil, facet.SelUpdateGoal, model.GoalArgs{BirthdayID: 0, Description: "bigger", TargetAmount: eth(6)})

	bob := f.newUser("Bob")
	f.mustCall(bob, eth(2), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})

	// Partially funded now, locked until the target is reached.
	_, err := f.call(alice, nil, facet.SelUpdateGoal, model.GoalArgs{BirthdayID: 0, Description: "locked", TargetAmount: eth(9)})
	assert.ErrorIs(t, err, facet.ErrGoalInProgress)

	f.mustCall(bob, eth(4), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})

	receipt := f.mustCall(alice, nil, facet.SelUpdateGoal, model.GoalArgs{BirthdayID: 0, Description: "next", TargetAmount: eth(10)})
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, model.EventGoalUpdated, receipt.Events[0].Name)

	goal := f.mustCall(alice, nil, facet.SelGetUserGoal, alice).Ret.(model.Goal)
	assert.Equal(t, "next", goal.Description)
	assert.Equal(t, 0, eth(10).Cmp(goal.TargetAmount))
	assert.Equal(t, 0, eth(6).Cmp(goal.AmountRaised), "raised amount carries over")
}

func TestUpdateGoalZeroTarget(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	f.mustCall(alice, nil, facet.SelCreateBirthday, model.CreateBirthdayArgs{When: when})

	// No goal yet: raised and target are both zero, so the rewrite goes
	// through and becomes the goal.
	f.mustCall(alice, nil, facet.SelUpdateGoal, model.GoalArgs{BirthdayID: 0, Description: "first", TargetAmount: eth(2)})

	goal := f.mustCall(alice, nil, facet.SelGetUserGoal, alice).Ret.(model.Goal)
	assert.Equal(t, "first", goal.Description)
	assert.NotEqual(t, int64(0), goal.CreatedAt)
}

func TestUserWithdrawEther(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	bob := f.newUser("Bob")

	_, err := f.call(alice, nil, facet.SelUserWithdrawEther, nil)
	assert.ErrorIs(t, err, facet.ErrInsufficientFunds)

	f.mustCall(bob, eth(4), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})

	receipt := f.mustCall(alice, nil, facet.SelUserWithdrawEther, nil)
	assert.Equal(t, 0, eth(4).Cmp(receipt.Ret.(*big.Int)))

	balance := f.mustCall(alice, nil, facet.SelGetUserBalance, alice).Ret.(*big.Int)
	assert.Equal(t, int64(0), balance.Int64(), "balance zeroes exactly")

	pool := f.mustCall(alice, nil, facet.SelCheckBalance, nil).Ret.(*big.Int)
	assert.Equal(t, int64(0), pool.Int64(), "contract pool drains by the same amount")
}

func TestUserWithdrawEtherAfterOwnerDrain(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	bob := f.newUser("Bob")

	f.mustCall(bob, eth(2), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})
	f.mustCall(f.deployer, nil, facet.SelBocWithdrawEther, nil)

	// Alice's credited balance survived the drain but the pool no longer
	// holds the funds, so her withdrawal must fail instead of pushing the
	// pool negative.
	_, err := f.call(alice, nil, facet.SelUserWithdrawEther, nil)
	assert.ErrorIs(t, err, facet.ErrNoContractEther)

	balance := f.mustCall(alice, nil, facet.SelGetUserBalance, alice).Ret.(*big.Int)
	assert.Equal(t, 0, eth(2).Cmp(balance), "failed withdrawal leaves the balance credited")

	pool := f.mustCall(alice, nil, facet.SelCheckBalance, nil).Ret.(*big.Int)
	assert.Equal(t, int64(0), pool.Int64(), "pool never goes negative")
}

func TestUserWithdrawEtherGoalGate(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	bob := f.newUser("Bob")
	f.mustCall(alice, nil, facet.SelCreateBirthdayAndGoal, model.CreateBirthdayAndGoalArgs{
		When:         when,
		Description:  "fund",
		TargetAmount: eth(5),
	})

	f.mustCall(bob, eth(2), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})

	_, err := f.call(alice, nil, facet.SelUserWithdrawEther, nil)
	assert.ErrorIs(t, err, facet.ErrGoalNotAchieved)

	f.mustCall(bob, eth(3), facet.SelSendEtherAsGift, model.SendEtherGiftArgs{Recipient: alice})

	receipt := f.mustCall(alice, nil, facet.SelUserWithdrawEther, nil)
	assert.Equal(t, 0, eth(5).Cmp(receipt.Ret.(*big.Int)))
}

func TestUserWithdrawToken(t *testing.T) {
	f := deploy(t)
	alice := f.newUser("Alice")
	bob := f.newUser("Bob")

	_, err := f.call(alice, nil, facet.SelUserWithdrawToken, nil)
	assert.ErrorIs(t, err, facet.ErrInsufficientBOC)

	f.fundTokens(bob, eth(10))
	f.mustCall(bob, nil, facet.SelSendTokenAsGift, model.SendTokenGiftArgs{Recipient: alice, Amount: eth(10)})

	receipt := f.mustCall(alice, nil, facet.SelUserWithdrawToken, nil)
	assert.Equal(t, 0, eth(10).Cmp(receipt.Ret.(*big.Int)))
	assert.Equal(t, 0, eth(10).Cmp(f.chain.Token.BalanceOf(alice)), "tokens actually move to the caller")

	proxyHeld := f.mustCall(alice, nil, facet.SelCheckTokenBalance, nil).Ret.(*big.Int)
	assert.Equal(t, int64(0), proxyHeld.Int64())
}
