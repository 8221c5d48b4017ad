// Package status maps the backend's free-text status tokens onto the closed
// vocabularies the UI renders. Every function is total: unknown input lands
// on the documented fallback.
package status

import (
	"strings"

	"farmconnect/entities"
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

var taskAliases = map[string]entities.TaskStatus{
	"completed":   entities.TaskCompleted,
	"urgent":      entities.TaskUrgent,
	"in_progress": entities.TaskInProgress,
	"in progress": entities.TaskInProgress,
}

// Task falls back to Pending.
func Task(raw string) entities.TaskStatus {
	if s, ok := taskAliases[norm(raw)]; ok {
		return s
	}
	return entities.TaskPending
}

var visitAliases = map[string]entities.VisitStatus{
	"completed": entities.VisitCompleted,
	"overdue":   entities.VisitOverdue,
}

// Visit falls back to Scheduled.
func Visit(raw string) entities.VisitStatus {
	if s, ok := visitAliases[norm(raw)]; ok {
		return s
	}
	return entities.VisitScheduled
}

// Service maps a rental request status. Any unrecognised non-empty token is
// Processing; only an empty one is Pending.
func Service(raw string) entities.ServiceStatus {
	switch n := norm(raw); n {
	case "approved", "work_order":
		return entities.ServiceInProgress
	case "completed":
		return entities.ServiceCompleted
	case "":
		return entities.ServicePending
	default:
		return entities.ServiceProcessing
	}
}

// StageForService picks the timeline stage a backend request has reached.
func StageForService(s entities.ServiceStatus) entities.Stage {
	switch s {
	case entities.ServiceCompleted:
		return entities.StageCompleted
	case entities.ServiceProcessing:
		return entities.StageProcessing
	case entities.ServiceInProgress:
		return entities.StageAssigned
	default:
		return entities.StageSubmitted
	}
}

// IsFarmerTodo and IsSupervisorTodo are independent filters, not a partition.

func IsFarmerTodo(raw string) bool { return norm(raw) == "pending" }

var supervisorTokens = map[string]bool{
	"pending approval":   true,
	"pending_approval":   true,
	"approval pending":   true,
	"approval_pending":   true,
	"awaiting approval":  true,
	"awaiting_approval":  true,
	"supervisor pending": true,
	"supervisor_pending": true,
	"work done":          true,
	"work_done":          true,
	"done":               true,
}

func IsSupervisorTodo(raw string) bool { return supervisorTokens[norm(raw)] }
