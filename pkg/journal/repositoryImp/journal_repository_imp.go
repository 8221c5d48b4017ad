package repositoryImp

import (
	"gorm.io/gorm"

	"farmconnect/entities"
	"farmconnect/pkg/journal/repository"
)

type journalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.JournalRepository { return &journalRepo{db} }

func (r *journalRepo) Record(e *entities.SyncEntry) error { return r.db.Create(e).Error }

// ListByFarmer returns the newest entries first.
func (r *journalRepo) ListByFarmer(farmerID string, limit int) ([]entities.SyncEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entities.SyncEntry
	err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *journalRepo) DeleteByFarmer(farmerID string) error {
	return r.db.Where("farmer_id = ?", farmerID).Delete(&entities.SyncEntry{}).Error
}
