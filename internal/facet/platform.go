package facet

import (
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Platform serves read-only aggregate projections over the other facets'
// storage. It holds no invariants of its own.
type Platform struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewPlatform() *Platform {
	f := &Platform{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelGetCompleteUser: f.getCompleteUser,
	}
	return f
}

func (f *Platform) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

// getCompleteUser composes everything the frontend needs about one account
// in a single call. Missing sub-entities come back as zero records, never as
// errors.
func (f *Platform) getCompleteUser(c *diamond.Ctx, v any) (any, error) {
	addr, err := arg[chain.Address](v)
	if err != nil {
		return nil, err
	}
	u, ok := c.State.ActiveUser(addr)
	if !ok {
		return nil, ErrUserNotFound
	}

	out := model.CompleteUser{
		User:          *u,
		Birthdays:     model.ZeroBirthday(),
		Messages:      append([]model.Message{}, c.State.Messages[addr]...),
		Notifications: append([]model.Notification{}, c.State.Notifications[addr]...),
		Goal:          model.ZeroGoal(),
		Subscriptions: model.ZeroSubscription(),
		Balance:       c.State.EtherBalance(addr),
		TokenBalance:  c.State.TokenBalance(addr),
	}
	out.Gifts = make([]model.Gift, 0, len(c.State.Gifts[addr]))
	for _, g := range c.State.Gifts[addr] {
		out.Gifts = append(out.Gifts, g.Clone())
	}
	if b, ok := c.State.Birthdays[addr]; ok {
		out.Birthdays = *b.Clone()
		if b.HasGoal() {
			out.Goal = b.Goal.Clone()
		}
	}
	if sub, ok := c.State.Subscriptions[addr]; ok {
		out.Subscriptions = *sub.Clone()
	}
	return out, nil
}
