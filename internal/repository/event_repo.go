package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/birthday-onchain/boc-api/internal/model"
)

// EventRepository handles database operations for the event log
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateBatch inserts every event of one committed transaction
func (r *EventRepository) CreateBatch(records []model.EventRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

// FindByTx returns all events of one transaction, in emission order
func (r *EventRepository) FindByTx(txID uuid.UUID) ([]model.EventRecord, error) {
	records := []model.EventRecord{}
	err := r.db.
		Where("tx_id = ?", txID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

// FindBySubject returns the newest events about one account
func (r *EventRepository) FindBySubject(subject string, limit int) ([]model.EventRecord, error) {
	records := []model.EventRecord{}
	err := r.db.
		Where("subject = ?", subject).
		Order("emitted_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// FindByName returns the newest events of one kind
func (r *EventRepository) FindByName(name string, limit int) ([]model.EventRecord, error) {
	records := []model.EventRecord{}
	err := r.db.
		Where("name = ?", name).
		Order("emitted_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// Recent returns the newest events across the whole platform
func (r *EventRepository) Recent(limit int) ([]model.EventRecord, error) {
	records := []model.EventRecord{}
	err := r.db.
		Order("emitted_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// CountByName counts how many events of one kind have been logged
func (r *EventRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.db.Model(&model.EventRecord{}).
		Where("name = ?", name).
		Count(&count).Error
	return count, err
}
