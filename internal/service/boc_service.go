package service

import (
	"context"
	"encoding/json"
	"log"
	"math/big"

	"github.com/google/uuid"

	"github.com/birthday-onchain/boc-api/internal/boc"
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/repository"
	"github.com/birthday-onchain/boc-api/internal/ws"
	"github.com/birthday-onchain/boc-api/pkg/notification"
)

// BOCService fronts the platform chain: it routes calls through the diamond
// and, on commit, persists the emitted events and fans them out to live
// clients and push devices. The hub, push service, and event repository are
// all optional; a nil one is skipped.
type BOCService struct {
	chain  *boc.Chain
	events *repository.EventRepository
	hub    *ws.Hub
	push   *notification.NotificationService
}

func NewBOCService(
	chain *boc.Chain,
	events *repository.EventRepository,
	hub *ws.Hub,
	push *notification.NotificationService,
) *BOCService {
	return &BOCService{
		chain:  chain,
		events: events,
		hub:    hub,
		push:   push,
	}
}

// Chain exposes the underlying platform instance for read paths and admin
// surfaces.
func (s *BOCService) Chain() *boc.Chain { return s.chain }

// Submit routes one call through the diamond. Failures surface the revert
// reason unchanged and leave nothing behind; commits are logged, streamed,
// and pushed.
func (s *BOCService) Submit(caller chain.Address, value *big.Int, sel chain.Selector, arg any) (*chain.Receipt, error) {
	receipt, err := s.chain.Diamond.Call(caller, value, sel, arg)
	if err != nil {
		return nil, err
	}
	s.publish(receipt)
	return receipt, nil
}

// Call is Submit with a typed return value.
func Call[T any](s *BOCService, caller chain.Address, value *big.Int, sel chain.Selector, arg any) (T, error) {
	var zero T
	receipt, err := s.Submit(caller, value, sel, arg)
	if err != nil {
		return zero, err
	}
	if receipt.Ret == nil {
		return zero, nil
	}
	ret, ok := receipt.Ret.(T)
	if !ok {
		return zero, nil
	}
	return ret, nil
}

// publish records and distributes the events of one committed transaction.
func (s *BOCService) publish(receipt *chain.Receipt) {
	records := make([]model.EventRecord, 0, len(receipt.Events))

	for _, ev := range receipt.Events {
		subject := eventSubject(ev)

		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			log.Printf("⚠️ Failed to encode event %s: %v", ev.Name, err)
			payload = []byte("{}")
		}
		records = append(records, model.EventRecord{
			ID:        uuid.New(),
			TxID:      receipt.TxID,
			Name:      ev.Name,
			Subject:   string(subject),
			Payload:   string(payload),
			EmittedAt: ev.EmittedAt,
		})

		if s.hub != nil {
			stream := &model.StreamEvent{
				Name:      ev.Name,
				Subject:   subject,
				Payload:   ev.Payload,
				EmittedAt: ev.EmittedAt,
			}
			switch ev.Name {
			case model.EventMessageCreated, model.EventGiftCreated, model.EventNotificationCreated:
				s.hub.SendToAddress(subject, stream)
			default:
				s.hub.Broadcast(stream)
			}
		}

		if s.push != nil && ev.Name == model.EventNotificationCreated {
			if n, ok := ev.Payload.(model.NotificationCreatedEvent); ok {
				go func() {
					if err := s.push.SendNotification(context.Background(), n.Receiver, n); err != nil {
						log.Printf("⚠️ Push notification failed for %s: %v", n.Receiver, err)
					}
				}()
			}
		}
	}

	if s.events != nil {
		if err := s.events.CreateBatch(records); err != nil {
			log.Printf("⚠️ Failed to persist %d event(s): %v", len(records), err)
		}
	}
}

// eventSubject names the account an event is about, for per-account history
// and targeted delivery.
func eventSubject(ev chain.Event) chain.Address {
	switch p := ev.Payload.(type) {
	case model.UserCreatedEvent:
		return p.User
	case model.UpdateUserEvent:
		return p.User
	case model.BirthdayCreatedEvent:
		return p.User
	case model.GoalCreatedEvent:
		return p.User
	case model.GoalUpdatedEvent:
		return p.User
	case model.MessageCreatedEvent:
		return p.Recipient
	case model.GiftCreatedEvent:
		return p.Recipient
	case model.NotificationCreatedEvent:
		return p.Receiver
	case model.UserSubscribedEvent:
		return p.User
	case model.OwnershipMovedEvent:
		return p.New
	default:
		return ""
	}
}
