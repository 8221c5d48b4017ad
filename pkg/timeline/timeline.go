// Package timeline builds the five step service lifecycle shown for every
// request, truncated at the stage the request has reached.
package timeline

import (
	"time"

	"farmconnect/entities"
	"farmconnect/pkg/dates"
	"farmconnect/pkg/status"
)

const (
	processingAfter = 30 * time.Minute
	assignedAfter   = 4 * time.Hour
	completedAfter  = 3 * time.Hour

	// BackendScheduleDays is the lead time assumed for requests listed by the backend.
	BackendScheduleDays = 2
)

// Build materializes events from Submitted up to and including stage. An
// out of range stage is clamped.
func Build(stage entities.Stage, createdAt, scheduledAt time.Time, title string) entities.ServiceTimeline {
	if stage < entities.StageSubmitted {
		stage = entities.StageSubmitted
	}
	if stage > entities.StageCompleted {
		stage = entities.StageCompleted
	}
	label := dates.LabelOr(scheduledAt, "TBD")

	all := []entities.ServiceTimelineEvent{
		{Stage: entities.StageSubmitted, At: createdAt, Title: "Request Submitted", Description: "We received your request for " + title + "."},
		{Stage: entities.StageProcessing, At: createdAt.Add(processingAfter), Title: "Processing", Description: "Our team is reviewing the details and preparing assignment."},
		{Stage: entities.StageAssigned, At: createdAt.Add(assignedAfter), Title: "Assigned", Description: "A service agent has been assigned to your request."},
		{Stage: entities.StageScheduled, At: scheduledAt, Title: "Scheduled", Description: "Service is scheduled for " + label + "."},
		{Stage: entities.StageCompleted, At: scheduledAt.Add(completedAfter), Title: "Completed", Description: "Service completed successfully."},
	}
	return entities.ServiceTimeline{Current: stage, Events: all[:int(stage)+1]}
}

// ForRequest attaches a timeline to a backend listed request. The request
// date is the creation instant; when it does not parse, now is used so the
// timeline still renders.
func ForRequest(req entities.ServiceRequest, now time.Time) entities.ServiceRequest {
	created, ok := dates.ParseString(req.RequestedDate)
	if !ok {
		created = now
	}
	tl := Build(status.StageForService(req.Status), created, dates.AddDays(created, BackendScheduleDays), req.Title)
	req.Timeline = &tl
	return req
}
