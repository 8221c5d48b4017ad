package entities

import "time"

type VisitStatus string

const (
	VisitScheduled VisitStatus = "Scheduled"
	VisitCompleted VisitStatus = "Completed"
	VisitOverdue   VisitStatus = "Overdue"
)

// FieldVisitRecord is a supervisor inspection. Date is the zero time when the
// backend sent nothing parseable; DateText keeps what it did send.
type FieldVisitRecord struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Supervisor string      `json:"supervisor"`
	Date       time.Time   `json:"date,omitzero"`
	DateText   string      `json:"dateText,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Status     VisitStatus `json:"status"`
}
