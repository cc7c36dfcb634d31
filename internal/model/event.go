package model

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/birthday-onchain/boc-api/internal/chain"
)

// Event names, append-only log consumed by the frontend via historical
// queries and the live WebSocket feed.
const (
	EventUserCreated         = "UserCreated"
	EventUpdateUser          = "UpdateUser"
	EventBirthdayCreated     = "BirthdayCreated"
	EventGoalCreated         = "GoalCreated"
	EventGoalUpdated         = "GoalUpdated"
	EventMessageCreated      = "MessageCreated"
	EventGiftCreated         = "GiftCreated"
	EventNotificationCreated = "NotificationCreated"
	EventUserSubscribed      = "UserSubscribed"
	EventOwnershipMoved      = "OwnershipTransferred"
)

type UserCreatedEvent struct {
	User      chain.Address `json:"user"`
	Timestamp int64         `json:"timestamp"`
}

type UpdateUserEvent struct {
	User      chain.Address `json:"user"`
	Timestamp int64         `json:"timestamp"`
}

type BirthdayCreatedEvent struct {
	User chain.Address `json:"user"`
	ID   uint64        `json:"id"`
	When int64         `json:"when"`
}

type GoalCreatedEvent struct {
	User       chain.Address `json:"user"`
	BirthdayID uint64        `json:"birthday_id"`
	Timestamp  int64         `json:"timestamp"`
}

type GoalUpdatedEvent struct {
	User       chain.Address `json:"user"`
	BirthdayID uint64        `json:"birthday_id"`
	Timestamp  int64         `json:"timestamp"`
}

type MessageCreatedEvent struct {
	Recipient chain.Address `json:"recipient"`
	Sender    chain.Address `json:"sender"`
	ID        uint64        `json:"id"`
	Timestamp int64         `json:"timestamp"`
}

type GiftCreatedEvent struct {
	Recipient chain.Address `json:"recipient"`
	Sender    chain.Address `json:"sender"`
	ID        uint64        `json:"id"`
	Amount    *big.Int      `json:"amount"`
	Timestamp int64         `json:"timestamp"`
}

type NotificationCreatedEvent struct {
	ID                 uint64           `json:"id"`
	Sender             chain.Address    `json:"sender"`
	Receiver           chain.Address    `json:"receiver"`
	NotificationTypeID uint64           `json:"notification_type_id"`
	NotificationType   NotificationType `json:"notification_type"`
	Timestamp          int64            `json:"timestamp"`
}

type UserSubscribedEvent struct {
	User      chain.Address `json:"user"`
	Timestamp int64         `json:"timestamp"`
}

type OwnershipMovedEvent struct {
	Previous  chain.Address `json:"previous"`
	New       chain.Address `json:"new"`
	Timestamp int64         `json:"timestamp"`
}

// EventRecord is the persisted form of an emitted event. Subject is the
// account the event is about (recipient for gifts/messages/notifications,
// the user otherwise), denormalized for per-account history queries.
type EventRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TxID      uuid.UUID `json:"tx_id" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" gorm:"size:64;index;not null"`
	Subject   string    `json:"subject" gorm:"size:42;index;not null"`
	Payload   string    `json:"payload" gorm:"type:text;not null"`
	EmittedAt int64     `json:"emitted_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// StreamEvent is the WebSocket wire form of a committed event.
type StreamEvent struct {
	Name      string        `json:"name"`
	Subject   chain.Address `json:"subject"`
	Payload   any           `json:"payload"`
	EmittedAt int64         `json:"emitted_at"`
}
