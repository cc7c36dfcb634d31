package facet

import (
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Access exposes platform ownership: reading it and handing it over. The
// router consults the same storage slot for cut authority, so a transfer
// moves upgrade rights too.
type Access struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewAccess() *Access {
	f := &Access{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelOwner:             f.owner,
		SelTransferOwnership: f.transferOwnership,
	}
	return f
}

func (f *Access) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Access) owner(c *diamond.Ctx, v any) (any, error) {
	return c.State.Platform.Owner, nil
}

func (f *Access) transferOwnership(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.TransferOwnershipArgs](v)
	if err != nil {
		return nil, err
	}
	if c.Caller != c.State.Platform.Owner {
		return nil, ErrOwnerOnly
	}
	previous := c.State.Platform.Owner
	c.State.Platform.Owner = a.NewOwner
	c.Emit(model.EventOwnershipMoved, model.OwnershipMovedEvent{
		Previous:  previous,
		New:       a.NewOwner,
		Timestamp: c.Now,
	})
	return nil, nil
}
