package model

import (
	"time"

	"github.com/google/uuid"
)

// Device is a push-notification target registered by a wallet account.
type Device struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Address      string    `json:"address" gorm:"size:42;index;not null"`
	FCMToken     string    `json:"fcm_token" gorm:"uniqueIndex;size:512;not null"`
	DeviceType   string    `json:"device_type" gorm:"size:20"` // web, ios, android
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}
