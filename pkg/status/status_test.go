package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmconnect/entities"
)

func TestTask(t *testing.T) {
	tests := []struct {
		in   string
		want entities.TaskStatus
	}{
		{"completed", entities.TaskCompleted},
		{"URGENT", entities.TaskUrgent},
		{"in_progress", entities.TaskInProgress},
		{" In Progress ", entities.TaskInProgress},
		{"", entities.TaskPending},
		{"xyz", entities.TaskPending},
		{"pending", entities.TaskPending},
		{"in-progress", entities.TaskPending},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Task(tt.in))
		})
	}
}

func TestVisit(t *testing.T) {
	assert.Equal(t, entities.VisitCompleted, Visit("Completed"))
	assert.Equal(t, entities.VisitOverdue, Visit("OVERDUE"))
	assert.Equal(t, entities.VisitScheduled, Visit(""))
	assert.Equal(t, entities.VisitScheduled, Visit("tomorrow"))
}

func TestService(t *testing.T) {
	tests := []struct {
		in   string
		want entities.ServiceStatus
	}{
		{"approved", entities.ServiceInProgress},
		{"WORK_ORDER", entities.ServiceInProgress},
		{"completed", entities.ServiceCompleted},
		{"submitted", entities.ServiceProcessing},
		{"rejected", entities.ServiceProcessing},
		{"", entities.ServicePending},
		{"   ", entities.ServicePending},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Service(tt.in))
		})
	}
}

func TestClassifiersAreTotal(t *testing.T) {
	taskSet := map[entities.TaskStatus]bool{
		entities.TaskPending: true, entities.TaskInProgress: true, entities.TaskUrgent: true, entities.TaskCompleted: true,
	}
	visitSet := map[entities.VisitStatus]bool{
		entities.VisitScheduled: true, entities.VisitCompleted: true, entities.VisitOverdue: true,
	}
	serviceSet := map[entities.ServiceStatus]bool{
		entities.ServicePending: true, entities.ServiceProcessing: true, entities.ServiceInProgress: true,
		entities.ServiceCompleted: true, entities.ServiceCancelled: true,
	}
	inputs := []string{"", " ", "\t\n", "DONE", "Completed", "ürgent", "in_progress", "null", "0", "🚜", "approved "}
	for _, in := range inputs {
		assert.True(t, taskSet[Task(in)], "task %q", in)
		assert.True(t, visitSet[Visit(in)], "visit %q", in)
		assert.True(t, serviceSet[Service(in)], "service %q", in)
		assert.True(t, StageForService(Service(in)).Valid(), "stage %q", in)
	}
}

func TestStageForService(t *testing.T) {
	assert.Equal(t, entities.StageCompleted, StageForService(entities.ServiceCompleted))
	assert.Equal(t, entities.StageProcessing, StageForService(entities.ServiceProcessing))
	assert.Equal(t, entities.StageAssigned, StageForService(entities.ServiceInProgress))
	assert.Equal(t, entities.StageSubmitted, StageForService(entities.ServicePending))
	assert.Equal(t, entities.StageSubmitted, StageForService(entities.ServiceCancelled))
}

func TestPlanMembership(t *testing.T) {
	assert.True(t, IsFarmerTodo("pending"))
	assert.True(t, IsFarmerTodo(" PENDING "))
	assert.False(t, IsFarmerTodo("pending approval"))
	assert.False(t, IsFarmerTodo(""))

	for _, tok := range []string{
		"pending approval", "pending_approval", "approval pending", "approval_pending",
		"awaiting approval", "awaiting_approval", "supervisor pending", "supervisor_pending",
		"work done", "work_done", "done", "Work Done",
	} {
		assert.True(t, IsSupervisorTodo(tok), tok)
	}
	assert.False(t, IsSupervisorTodo("pending"))
	assert.False(t, IsSupervisorTodo("approved"))

	// independent filters: a row can be in neither list
	assert.False(t, IsFarmerTodo("completed"))
	assert.False(t, IsSupervisorTodo("completed"))
}
