package facet

import (
	"math/big"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Activities handles the interpersonal operations: messages and gifts, with
// their derived balance, goal, and notification updates.
type Activities struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewActivities() *Activities {
	f := &Activities{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelSendMessage:       f.sendMessage,
		SelSendEtherAsGift:   f.sendEtherAsGift,
		SelSendTokenAsGift:   f.sendTokenAsGift,
		SelCheckBalance:      f.checkBalance,
		SelCheckTokenBalance: f.checkTokenBalance,
	}
	return f
}

func (f *Activities) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Activities) sendMessage(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.SendMessageArgs](v)
	if err != nil {
		return nil, err
	}
	if _, ok := c.State.ActiveUser(a.Recipient); !ok {
		return nil, ErrUserNotFound
	}
	if a.Recipient == c.Caller {
		return nil, ErrSelfMessage
	}
	id := uint64(len(c.State.Messages[a.Recipient]) + 1)
	c.State.Messages[a.Recipient] = append(c.State.Messages[a.Recipient], model.Message{
		ID:        id,
		CreatedAt: c.Now,
		Sender:    c.Caller,
		Recipient: a.Recipient,
		Message:   a.Message,
	})
	c.Emit(model.EventMessageCreated, model.MessageCreatedEvent{
		Recipient: a.Recipient,
		Sender:    c.Caller,
		ID:        id,
		Timestamp: c.Now,
	})
	notify(c, c.Caller, a.Recipient, model.NotificationMessage)
	return nil, nil
}

// sendEtherAsGift is payable: the attached value is the gift. It lands in
// the contract's ether pool and accrues to the recipient's balance.
func (f *Activities) sendEtherAsGift(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.SendEtherGiftArgs](v)
	if err != nil {
		return nil, err
	}
	if err := f.checkGift(c, a.Recipient, c.Value); err != nil {
		return nil, err
	}
	c.State.ContractEther.Add(c.State.ContractEther, c.Value)
	c.State.CreditEther(a.Recipient, c.Value)
	f.raiseGoal(c, a.Recipient, c.Value)
	f.recordGift(c, a.Recipient, c.Value)
	return nil, nil
}

// sendTokenAsGift pulls amount from the caller via a prior allowance to the
// proxy, then accrues it to the recipient's token balance.
func (f *Activities) sendTokenAsGift(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.SendTokenGiftArgs](v)
	if err != nil {
		return nil, err
	}
	if err := f.checkGift(c, a.Recipient, a.Amount); err != nil {
		return nil, err
	}
	if err := c.Token.TransferFrom(c.Proxy, c.Caller, c.Proxy, a.Amount); err != nil {
		return nil, err
	}
	c.State.CreditToken(a.Recipient, a.Amount)
	f.raiseGoal(c, a.Recipient, a.Amount)
	f.recordGift(c, a.Recipient, a.Amount)
	return nil, nil
}

func (f *Activities) checkBalance(c *diamond.Ctx, v any) (any, error) {
	return chain.CopyAmount(c.State.ContractEther), nil
}

func (f *Activities) checkTokenBalance(c *diamond.Ctx, v any) (any, error) {
	return c.Token.BalanceOf(c.Proxy), nil
}

func (f *Activities) checkGift(c *diamond.Ctx, recipient chain.Address, amount *big.Int) error {
	if _, ok := c.State.ActiveUser(recipient); !ok {
		return ErrUserNotFound
	}
	if recipient == c.Caller {
		return ErrSelfGift
	}
	if !chain.IsPositive(amount) {
		return ErrZeroGift
	}
	return nil
}

// raiseGoal adds the gift to the recipient's goal progress. There is no cap;
// a goal may be over-funded.
func (f *Activities) raiseGoal(c *diamond.Ctx, recipient chain.Address, amount *big.Int) {
	b, ok := c.State.Birthdays[recipient]
	if !ok {
		return
	}
	if b.Goal.AmountRaised == nil {
		b.Goal.AmountRaised = new(big.Int)
	}
	b.Goal.AmountRaised.Add(b.Goal.AmountRaised, amount)
}

func (f *Activities) recordGift(c *diamond.Ctx, recipient chain.Address, amount *big.Int) {
	id := uint64(len(c.State.Gifts[recipient]) + 1)
	c.State.Gifts[recipient] = append(c.State.Gifts[recipient], model.Gift{
		ID:        id,
		CreatedAt: c.Now,
		Sender:    c.Caller,
		Recipient: recipient,
		Amount:    chain.CopyAmount(amount),
	})
	c.Emit(model.EventGiftCreated, model.GiftCreatedEvent{
		Recipient: recipient,
		Sender:    c.Caller,
		ID:        id,
		Amount:    chain.CopyAmount(amount),
		Timestamp: c.Now,
	})
	notify(c, c.Caller, recipient, model.NotificationGift)
}
