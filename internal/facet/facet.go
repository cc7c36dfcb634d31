// Package facet implements the operation handlers the diamond router
// dispatches to: identity, birthdays and goals, messaging and gifting,
// subscriptions, aggregate reads, ownership, and storage initialization.
// Each facet exposes a disjoint selector set and touches only its slice of
// the shared state.
package facet

import (
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/model"
)

// base assigns each facet its own address at construction.
type base struct {
	addr chain.Address
}

func newBase() base { return base{addr: chain.NewAddress()} }

func (b base) Address() chain.Address { return b.addr }

// arg coerces the dispatch payload to the handler's declared argument type.
func arg[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, ErrInvalidPayload
	}
	return t, nil
}

// notify appends a notification for receiver and emits NotificationCreated.
// NotificationTypeID mirrors the per-receiver counter.
func notify(c *diamond.Ctx, sender, receiver chain.Address, typ model.NotificationType) {
	id := uint64(len(c.State.Notifications[receiver]) + 1)
	c.State.Notifications[receiver] = append(c.State.Notifications[receiver], model.Notification{
		ID:                 id,
		Sender:             sender,
		Receiver:           receiver,
		NotificationTypeID: id,
		NotificationType:   typ,
		CreatedAt:          c.Now,
	})
	c.Emit(model.EventNotificationCreated, model.NotificationCreatedEvent{
		ID:                 id,
		Sender:             sender,
		Receiver:           receiver,
		NotificationTypeID: id,
		NotificationType:   typ,
		Timestamp:          c.Now,
	})
}
