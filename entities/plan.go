package entities

import "time"

// CultivationPlanItem is one row of a farmer's cultivation plan. Status is the
// backend's free text; membership in the to-do lists is decided by pkg/status.
type CultivationPlanItem struct {
	ID            string    `json:"id"`
	Activity      string    `json:"activity"`
	Date          time.Time `json:"date,omitzero"`
	DateText      string    `json:"dateText,omitempty"`
	FarmID        string    `json:"farmId,omitempty"`
	AssignedAcres *float64  `json:"assignedAcres,omitempty"`
	Status        string    `json:"status"`
}

// StatusAwaitingApproval is what a local "work done" submission writes.
const StatusAwaitingApproval = "pending_approval"
