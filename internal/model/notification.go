package model

import "github.com/birthday-onchain/boc-api/internal/chain"

// NotificationType discriminates what produced a notification.
type NotificationType uint8

const (
	NotificationGift    NotificationType = 0
	NotificationMessage NotificationType = 1
)

// Notification is generated as a side effect of every gift or message,
// append-only per receiver. NotificationTypeID tracks the per-receiver
// counter, mirroring ID.
type Notification struct {
	ID                 uint64           `json:"id"`
	Sender             chain.Address    `json:"sender"`
	Receiver           chain.Address    `json:"receiver"`
	NotificationTypeID uint64           `json:"notification_type_id"`
	NotificationType   NotificationType `json:"notification_type"`
	CreatedAt          int64            `json:"created_at"`
}
