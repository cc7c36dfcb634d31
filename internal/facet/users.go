package facet

import (
	"sort"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Users handles identity lifecycle and the per-account read accessors, plus
// the owner's contract ether withdrawal.
type Users struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewUsers() *Users {
	f := &Users{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelCreateUser:           f.createUser,
		SelUpdateUser:           f.updateUser,
		SelGetUser:              f.getUser,
		SelGetAllUsers:          f.getAllUsers,
		SelGetUserMessages:      f.getUserMessages,
		SelGetUserNotifications: f.getUserNotifications,
		SelGetUserGifts:         f.getUserGifts,
		SelGetUserBirthdays:     f.getUserBirthdays,
		SelGetUserGoal:          f.getUserGoal,
		SelGetUserSubscription:  f.getUserSubscription,
		SelGetUserBalance:       f.getUserBalance,
		SelGetUserTokenBalance:  f.getUserTokenBalance,
		SelBocWithdrawEther:     f.bocWithdrawEther,
	}
	return f
}

func (f *Users) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Users) createUser(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.CreateUserArgs](v)
	if err != nil {
		return nil, err
	}
	if _, exists := c.State.ActiveUser(c.Caller); exists {
		return nil, ErrUserExists
	}
	c.State.Users[c.Caller] = &model.User{
		UID:        c.Caller,
		Fullname:   a.Fullname,
		Nickname:   a.Nickname,
		Gender:     a.Gender,
		Currency:   a.Currency,
		Photo:      a.Photo,
		JoinedDate: c.Now,
		IsActive:   true,
	}
	c.Emit(model.EventUserCreated, model.UserCreatedEvent{User: c.Caller, Timestamp: c.Now})
	return nil, nil
}

func (f *Users) updateUser(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.UpdateUserArgs](v)
	if err != nil {
		return nil, err
	}
	u, ok := c.State.ActiveUser(c.Caller)
	if !ok {
		return nil, ErrUserNotFound
	}
	u.Fullname = a.Fullname
	u.Nickname = a.Nickname
	u.Currency = a.Currency
	u.Photo = a.Photo
	c.Emit(model.EventUpdateUser, model.UpdateUserEvent{User: c.Caller, Timestamp: c.Now})
	return nil, nil
}

func (f *Users) getUser(c *diamond.Ctx, v any) (any, error) {
	addr, err := arg[chain.Address](v)
	if err != nil {
		return nil, err
	}
	u, ok := c.State.ActiveUser(addr)
	if !ok {
		return nil, ErrUserNotFound
	}
	return *u, nil
}

func (f *Users) getAllUsers(c *diamond.Ctx, v any) (any, error) {
	users := make([]model.User, 0, len(c.State.Users))
	for _, u := range c.State.Users {
		if u.IsActive {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UID < users[j].UID })
	return users, nil
}

func (f *Users) getUserMessages(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	return append([]model.Message{}, c.State.Messages[addr]...), nil
}

func (f *Users) getUserNotifications(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	return append([]model.Notification{}, c.State.Notifications[addr]...), nil
}

func (f *Users) getUserGifts(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	gifts := make([]model.Gift, 0, len(c.State.Gifts[addr]))
	for _, g := range c.State.Gifts[addr] {
		gifts = append(gifts, g.Clone())
	}
	return gifts, nil
}

// getUserBirthdays returns the zero record, not an error, for users who have
// no birthday yet.
func (f *Users) getUserBirthdays(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	b, ok := c.State.Birthdays[addr]
	if !ok {
		return model.ZeroBirthday(), nil
	}
	return *b.Clone(), nil
}

func (f *Users) getUserGoal(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	b, ok := c.State.Birthdays[addr]
	if !ok {
		return nil, ErrNoBirthdayFound
	}
	if !b.HasGoal() {
		return model.ZeroGoal(), nil
	}
	return b.Goal.Clone(), nil
}

func (f *Users) getUserSubscription(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	sub, ok := c.State.Subscriptions[addr]
	if !ok {
		return model.ZeroSubscription(), nil
	}
	return *sub.Clone(), nil
}

func (f *Users) getUserBalance(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	return c.State.EtherBalance(addr), nil
}

func (f *Users) getUserTokenBalance(c *diamond.Ctx, v any) (any, error) {
	addr, err := f.requireUser(c, v)
	if err != nil {
		return nil, err
	}
	return c.State.TokenBalance(addr), nil
}

// bocWithdrawEther drains the contract's accumulated ether to the owner.
func (f *Users) bocWithdrawEther(c *diamond.Ctx, v any) (any, error) {
	if c.Caller != c.State.Platform.Owner {
		return nil, ErrOwnerOnly
	}
	if !chain.IsPositive(c.State.ContractEther) {
		return nil, ErrNoContractEther
	}
	amount := chain.CopyAmount(c.State.ContractEther)
	c.State.ContractEther.SetInt64(0)
	return amount, nil
}

func (f *Users) requireUser(c *diamond.Ctx, v any) (chain.Address, error) {
	addr, err := arg[chain.Address](v)
	if err != nil {
		return "", err
	}
	if _, ok := c.State.ActiveUser(addr); !ok {
		return "", ErrUserNotFound
	}
	return addr, nil
}
