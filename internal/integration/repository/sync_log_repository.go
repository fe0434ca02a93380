package repository

import (
	"errors"
	"time"

	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncLogRepository is the append-only sync ledger.
type SyncLogRepository interface {
	Append(userID, service, details string, success bool) error
	FindLatest(userID, service string) (*integrationdomain.SyncLog, error)
	ListByUser(userID string, limit int) ([]*integrationdomain.SyncLog, error)
}

type syncLogRepository struct {
	db *gorm.DB
}

// NewSyncLogRepository creates a new instance of syncLogRepository
func NewSyncLogRepository(db *gorm.DB) SyncLogRepository {
	return &syncLogRepository{
		db: db,
	}
}

func (r *syncLogRepository) Append(userID, service, details string, success bool) error {
	entry := &integrationdomain.SyncLog{
		ID:       uuid.New().String(),
		UserID:   userID,
		Service:  service,
		Details:  details,
		Success:  success,
		SyncedAt: time.Now(),
	}
	return r.db.Create(entry).Error
}

func (r *syncLogRepository) FindLatest(userID, service string) (*integrationdomain.SyncLog, error) {
	var entry integrationdomain.SyncLog
	err := r.db.Where("user_id = ? AND service = ?", userID, service).
		Order("synced_at DESC").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *syncLogRepository) ListByUser(userID string, limit int) ([]*integrationdomain.SyncLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []*integrationdomain.SyncLog
	err := r.db.Where("user_id = ?", userID).
		Order("synced_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
