package repository

import "farmconnect/entities"

type JournalRepository interface {
	Record(e *entities.SyncEntry) error
	ListByFarmer(farmerID string, limit int) ([]entities.SyncEntry, error)
	DeleteByFarmer(farmerID string) error
}
