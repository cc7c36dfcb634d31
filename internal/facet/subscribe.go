package facet

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Subscribe sells the one-way "featured" subscription, payable in ether or
// BOC token, and serves the featured index.
type Subscribe struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewSubscribe() *Subscribe {
	f := &Subscribe{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelSubscribeWithEther: f.subscribeWithEther,
		SelSubscribeWithToken: f.subscribeWithToken,
		SelGetSubscribedUsers: f.getSubscribedUsers,
	}
	return f
}

func (f *Subscribe) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Subscribe) subscribeWithEther(c *diamond.Ctx, v any) (any, error) {
	u, err := f.checkSubscriber(c)
	if err != nil {
		return nil, err
	}
	if !chain.IsPositive(c.Value) {
		return nil, ErrNotEnoughEther
	}
	c.State.ContractEther.Add(c.State.ContractEther, c.Value)
	f.recordSubscription(c, u, c.Value)
	return nil, nil
}

func (f *Subscribe) subscribeWithToken(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.SubscribeTokenArgs](v)
	if err != nil {
		return nil, err
	}
	u, err := f.checkSubscriber(c)
	if err != nil {
		return nil, err
	}
	if !chain.IsPositive(a.Amount) {
		return nil, ErrLowTokenBalance
	}
	if err := c.Token.TransferFrom(c.Proxy, c.Caller, c.Proxy, a.Amount); err != nil {
		return nil, err
	}
	f.recordSubscription(c, u, a.Amount)
	return nil, nil
}

func (f *Subscribe) getSubscribedUsers(c *diamond.Ctx, v any) (any, error) {
	users := make([]model.User, 0, len(c.State.Subscribed))
	for _, addr := range c.State.Subscribed {
		if u, ok := c.State.Users[addr]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *Subscribe) checkSubscriber(c *diamond.Ctx) (*model.User, error) {
	u, ok := c.State.ActiveUser(c.Caller)
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.HasSubscription {
		return nil, ErrAlreadySubscribed
	}
	return u, nil
}

// recordSubscription flips the one-way flag, stores the record, and adds the
// caller to the featured index.
func (f *Subscribe) recordSubscription(c *diamond.Ctx, u *model.User, amount *big.Int) {
	u.HasSubscription = true
	c.State.Subscriptions[c.Caller] = &model.Subscription{
		ID:        1,
		CreatedAt: c.Now,
		Amount:    chain.CopyAmount(amount),
	}
	c.State.Subscribed = append(c.State.Subscribed, c.Caller)
	c.Emit(model.EventUserSubscribed, model.UserSubscribedEvent{User: c.Caller, Timestamp: c.Now})
}
