package entities

import "time"

const (
	SyncTaskStatus    = "task_status"
	SyncRentalRequest = "rental_request"
)

// SyncEntry records one best-effort synchronization with the backend.
type SyncEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FarmerID  string    `gorm:"index" json:"farmer_id"`
	Kind      string    `gorm:"index" json:"kind"` // task_status|rental_request
	Ref       string    `json:"ref"`
	OK        bool      `json:"ok"`
	Simulated bool      `json:"simulated"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
