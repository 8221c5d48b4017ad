package entities

import "time"

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "Pending"
	ServiceProcessing ServiceStatus = "Processing"
	ServiceInProgress ServiceStatus = "In Progress"
	ServiceCompleted  ServiceStatus = "Completed"
	ServiceCancelled  ServiceStatus = "Cancelled"
)

// Stage is a step of the fixed service lifecycle. The numeric order is the
// lifecycle order.
type Stage int

const (
	StageSubmitted Stage = iota
	StageProcessing
	StageAssigned
	StageScheduled
	StageCompleted
)

var stageNames = [...]string{"submitted", "processing", "assigned", "scheduled", "completed"}

func Stages() []Stage {
	return []Stage{StageSubmitted, StageProcessing, StageAssigned, StageScheduled, StageCompleted}
}

func (s Stage) Valid() bool { return s >= StageSubmitted && s <= StageCompleted }

func (s Stage) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Stage) UnmarshalText(b []byte) error {
	for i, n := range stageNames {
		if n == string(b) {
			*s = Stage(i)
			return nil
		}
	}
	*s = StageSubmitted
	return nil
}

type ServiceTimelineEvent struct {
	Stage       Stage     `json:"stage"`
	At          time.Time `json:"at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// ServiceTimeline events run from StageSubmitted up to and including Current.
type ServiceTimeline struct {
	Current Stage                  `json:"current"`
	Events  []ServiceTimelineEvent `json:"events"`
}

type ServiceRequest struct {
	ID            string           `json:"id"`
	RequestID     string           `json:"requestId"`
	Title         string           `json:"title"`
	Category      string           `json:"category"`
	RequestedDate string           `json:"requestedDate"`
	Priority      string           `json:"priority"`
	Status        ServiceStatus    `json:"status"`
	Description   string           `json:"description"`
	AssignedTo    string           `json:"assignedTo,omitempty"`
	Timeline      *ServiceTimeline `json:"timeline,omitempty"`
}

type ServiceCatalogItem struct {
	Key                string  `json:"key"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	PriceLabel         string  `json:"priceLabel"`
	PriceValue         float64 `json:"priceValue"`
	DaysUntilAvailable int     `json:"daysUntilAvailable"`
}

// TrackedServiceRequest is created client-side the moment a request is
// submitted, whether or not the backend accepted it.
type TrackedServiceRequest struct {
	ID                 string             `json:"id"`
	RequestID          string             `json:"requestId"`
	CreatedAt          time.Time          `json:"createdAt"`
	Service            ServiceCatalogItem `json:"service"`
	Timeline           ServiceTimeline    `json:"timeline"`
	ScheduledDateLabel string             `json:"scheduledDateLabel"`
	Simulated          bool               `json:"simulated,omitempty"`
	// Fallback is why the backend call failed when Simulated is set.
	Fallback string `json:"fallback,omitempty"`
}
