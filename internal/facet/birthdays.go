package facet

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Birthdays handles the birthday and goal lifecycle plus user fund
// withdrawal, which is gated on the goal state.
type Birthdays struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewBirthdays() *Birthdays {
	f := &Birthdays{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelCreateBirthday:        f.createBirthday,
		SelCreateBirthdayAndGoal: f.createBirthdayAndGoal,
		SelCreateTimeline:        f.createTimeline,
		SelCreateGoal:            f.createGoal,
		SelUpdateGoal:            f.updateGoal,
		SelUserWithdrawEther:     f.userWithdrawEther,
		SelUserWithdrawToken:     f.userWithdrawToken,
	}
	return f
}

func (f *Birthdays) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Birthdays) createBirthday(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.CreateBirthdayArgs](v)
	if err != nil {
		return nil, err
	}
	if _, ok := c.State.ActiveUser(c.Caller); !ok {
		return nil, ErrUserNotFound
	}
	f.placeBirthday(c, a.When)
	return nil, nil
}

func (f *Birthdays) createBirthdayAndGoal(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.CreateBirthdayAndGoalArgs](v)
	if err != nil {
		return nil, err
	}
	if _, ok := c.State.ActiveUser(c.Caller); !ok {
		return nil, ErrUserNotFound
	}
	b := f.placeBirthday(c, a.When)
	b.Goal = model.Goal{
		CreatedAt:    c.Now,
		Description:  a.Description,
		TargetAmount: chain.CopyAmount(a.TargetAmount),
		AmountRaised: new(big.Int),
	}
	c.Emit(model.EventGoalCreated, model.GoalCreatedEvent{User: c.Caller, BirthdayID: b.ID, Timestamp: c.Now})
	return nil, nil
}

// placeBirthday installs the caller's birthday, seeding the timeline with
// its first recurrence entry. Re-creating replaces the previous record.
func (f *Birthdays) placeBirthday(c *diamond.Ctx, when int64) *model.Birthday {
	b := &model.Birthday{
		ID:        0,
		CreatedAt: c.Now,
		When:      when,
		Goal:      model.ZeroGoal(),
		Timeline:  []model.TimelineEntry{{CreatedAt: c.Now}},
	}
	c.State.Birthdays[c.Caller] = b
	c.Emit(model.EventBirthdayCreated, model.BirthdayCreatedEvent{User: c.Caller, ID: b.ID, When: when})
	return b
}

func (f *Birthdays) createTimeline(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.CreateTimelineArgs](v)
	if err != nil {
		return nil, err
	}
	b, err := f.requireBirthday(c, a.BirthdayID)
	if err != nil {
		return nil, err
	}
	b.Timeline = append(b.Timeline, model.TimelineEntry{CreatedAt: c.Now})
	return nil, nil
}

func (f *Birthdays) createGoal(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.GoalArgs](v)
	if err != nil {
		return nil, err
	}
	b, err := f.requireBirthday(c, a.BirthdayID)
	if err != nil {
		return nil, err
	}
	b.Goal = model.Goal{
		CreatedAt:    c.Now,
		Description:  a.Description,
		TargetAmount: chain.CopyAmount(a.TargetAmount),
		AmountRaised: new(big.Int),
	}
	c.Emit(model.EventGoalCreated, model.GoalCreatedEvent{User: c.Caller, BirthdayID: b.ID, Timestamp: c.Now})
	return nil, nil
}

// updateGoal is refused while the current goal is partially funded; a goal
// nothing has been raised against, or a fully funded one, may be rewritten.
// AmountRaised carries over.
func (f *Birthdays) updateGoal(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.GoalArgs](v)
	if err != nil {
		return nil, err
	}
	b, err := f.requireBirthday(c, a.BirthdayID)
	if err != nil {
		return nil, err
	}
	raised := chain.CopyAmount(b.Goal.AmountRaised)
	target := chain.CopyAmount(b.Goal.TargetAmount)
	if raised.Sign() > 0 && raised.Cmp(target) < 0 {
		return nil, ErrGoalInProgress
	}
	if !b.HasGoal() {
		b.Goal.CreatedAt = c.Now
	}
	b.Goal.Description = a.Description
	b.Goal.TargetAmount = chain.CopyAmount(a.TargetAmount)
	if b.Goal.AmountRaised == nil {
		b.Goal.AmountRaised = new(big.Int)
	}
	c.Emit(model.EventGoalUpdated, model.GoalUpdatedEvent{User: c.Caller, BirthdayID: b.ID, Timestamp: c.Now})
	return nil, nil
}

func (f *Birthdays) userWithdrawEther(c *diamond.Ctx, v any) (any, error) {
	if _, ok := c.State.ActiveUser(c.Caller); !ok {
		return nil, ErrUserNotFound
	}
	balance := c.State.EtherBalance(c.Caller)
	if !chain.IsPositive(balance) {
		return nil, ErrInsufficientFunds
	}
	if err := f.requireGoalAchieved(c); err != nil {
		return nil, err
	}
	// The pool can be short of credited balances after an owner drain.
	if c.State.ContractEther.Cmp(balance) < 0 {
		return nil, ErrNoContractEther
	}
	c.State.EtherBalances[c.Caller] = new(big.Int)
	c.State.ContractEther.Sub(c.State.ContractEther, balance)
	return balance, nil
}

func (f *Birthdays) userWithdrawToken(c *diamond.Ctx, v any) (any, error) {
	if _, ok := c.State.ActiveUser(c.Caller); !ok {
		return nil, ErrUserNotFound
	}
	balance := c.State.TokenBalance(c.Caller)
	if !chain.IsPositive(balance) {
		return nil, ErrInsufficientBOC
	}
	if err := f.requireGoalAchieved(c); err != nil {
		return nil, err
	}
	if err := c.Token.Transfer(c.Proxy, c.Caller, balance); err != nil {
		return nil, err
	}
	c.State.TokenBalances[c.Caller] = new(big.Int)
	return balance, nil
}

func (f *Birthdays) requireBirthday(c *diamond.Ctx, id uint64) (*model.Birthday, error) {
	b, ok := c.State.Birthdays[c.Caller]
	if !ok {
		return nil, ErrNoBirthdaysFound
	}
	if id != b.ID {
		return nil, ErrInvalidBirthdayID
	}
	return b, nil
}

// requireGoalAchieved denies withdrawal while the caller's goal is short of
// its target. Callers without a birthday pass the balance check alone.
func (f *Birthdays) requireGoalAchieved(c *diamond.Ctx) error {
	b, ok := c.State.Birthdays[c.Caller]
	if !ok {
		return nil
	}
	raised := chain.CopyAmount(b.Goal.AmountRaised)
	target := chain.CopyAmount(b.Goal.TargetAmount)
	if raised.Cmp(target) < 0 {
		return ErrGoalNotAchieved
	}
	return nil
}
