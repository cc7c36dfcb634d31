package facet

import (
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// Init seeds the shared storage defaults. It runs exactly once, atomically
// with the bootstrap cut, and is never routed afterwards.
type Init struct {
	base
	handlers map[chain.Selector]diamond.Handler
}

func NewInit() *Init {
	f := &Init{base: newBase()}
	f.handlers = map[chain.Selector]diamond.Handler{
		SelInit: f.init,
	}
	return f
}

func (f *Init) Handlers() map[chain.Selector]diamond.Handler { return f.handlers }

func (f *Init) init(c *diamond.Ctx, v any) (any, error) {
	a, err := arg[model.InitArgs](v)
	if err != nil {
		return nil, err
	}
	if c.State.Platform.Initialized {
		return nil, ErrAlreadyInit
	}
	c.State.Platform.Owner = a.Owner
	c.State.Platform.FeeToken = a.FeeToken
	c.State.Platform.FeePercent = a.FeePercent
	c.State.Platform.Initialized = true
	return nil, nil
}
