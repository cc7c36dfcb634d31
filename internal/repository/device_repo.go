package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/birthday-onchain/boc-api/internal/model"
)

// DeviceRepository handles database operations for push-notification devices
type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Register adds or refreshes a device token for an account
func (r *DeviceRepository) Register(address, token, deviceType string) error {
	device := model.Device{
		ID:           uuid.New(),
		Address:      address,
		FCMToken:     token,
		DeviceType:   deviceType,
		LastActiveAt: time.Now(),
	}
	// Upsert: on conflict do update
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fcm_token"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"address":        address,
			"device_type":    deviceType,
			"last_active_at": time.Now(),
		}),
	}).Create(&device).Error
}

// FindByAddress gets all devices registered by an account
func (r *DeviceRepository) FindByAddress(address string) ([]model.Device, error) {
	var devices []model.Device
	err := r.db.Where("address = ?", address).Find(&devices).Error
	return devices, err
}

// Remove deletes a device token, e.g. when FCM reports it invalid
func (r *DeviceRepository) Remove(token string) error {
	return r.db.Where("fcm_token = ?", token).Delete(&model.Device{}).Error
}

// CleanupStale removes devices not seen since the cutoff (housekeeping)
func (r *DeviceRepository) CleanupStale(cutoff time.Time) error {
	return r.db.Where("last_active_at < ?", cutoff).Delete(&model.Device{}).Error
}
