package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/birthday-onchain/boc-api/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?cache=shared&_pragma=foreign_keys(1)&mode=memory"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.EventRecord{}, &model.Device{}))
	return db
}

func record(txID uuid.UUID, name, subject string, at int64) model.EventRecord {
	return model.EventRecord{
		ID:        uuid.New(),
		TxID:      txID,
		Name:      name,
		Subject:   subject,
		Payload:   "{}",
		EmittedAt: at,
	}
}

func TestEventRepository(t *testing.T) {
	repo := NewEventRepository(testDB(t))

	tx1 := uuid.New()
	tx2 := uuid.New()
	alice := "0x00000000000000000000000000000000000000a1"
	bob := "0x00000000000000000000000000000000000000b0"

	require.NoError(t, repo.CreateBatch([]model.EventRecord{
		record(tx1, model.EventGiftCreated, alice, 100),
		record(tx1, model.EventNotificationCreated, alice, 100),
		record(tx2, model.EventUserCreated, bob, 200),
	}))
	require.NoError(t, repo.CreateBatch(nil))

	byTx, err := repo.FindByTx(tx1)
	require.NoError(t, err)
	assert.Len(t, byTx, 2)

	bySubject, err := repo.FindBySubject(alice, 10)
	require.NoError(t, err)
	assert.Len(t, bySubject, 2)

	byName, err := repo.FindByName(model.EventUserCreated, 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, bob, byName[0].Subject)

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(200), recent[0].EmittedAt, "newest first")

	count, err := repo.CountByName(model.EventGiftCreated)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeviceRepository(t *testing.T) {
	repo := NewDeviceRepository(testDB(t))
	alice := "0x00000000000000000000000000000000000000a1"

	require.NoError(t, repo.Register(alice, "token-1", "web"))
	require.NoError(t, repo.Register(alice, "token-2", "ios"))

	devices, err := repo.FindByAddress(alice)
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	// Re-registering the same token refreshes instead of duplicating.
	require.NoError(t, repo.Register(alice, "token-1", "android"))
	devices, err = repo.FindByAddress(alice)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	require.NoError(t, repo.Remove("token-1"))
	devices, err = repo.FindByAddress(alice)
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	require.NoError(t, repo.CleanupStale(time.Now().Add(time.Hour)))
	devices, err = repo.FindByAddress(alice)
	require.NoError(t, err)
	assert.Empty(t, devices)
}
