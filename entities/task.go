package entities

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskUrgent     TaskStatus = "Urgent"
	TaskCompleted  TaskStatus = "Completed"
)

// Task is one dashboard task. HarvestDate keeps the backend's due-date text
// verbatim so the UI can label it without reformatting.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Field       string     `json:"field"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	HarvestDate string     `json:"harvestDate,omitempty"`
	Progress    *float64   `json:"progress,omitempty"` // 0..100
}

// Completed returns the record a local mark-complete produces.
func (t Task) Completed() Task {
	full := 100.0
	t.Status = TaskCompleted
	t.Progress = &full
	return t
}

// TaskSummary feeds the dashboard header.
type TaskSummary struct {
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Progress  float64 `json:"progress"` // 0..1
	Upcoming  *Task   `json:"upcoming,omitempty"`
}

func SummarizeTasks(tasks []Task) TaskSummary {
	s := TaskSummary{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case TaskPending:
			s.Pending++
		case TaskCompleted:
			s.Completed++
		}
		if s.Upcoming == nil && tasks[i].Status != TaskCompleted {
			t := tasks[i]
			s.Upcoming = &t
		}
	}
	if s.Upcoming == nil && len(tasks) > 0 {
		t := tasks[0]
		s.Upcoming = &t
	}
	denom := len(tasks)
	if denom < 1 {
		denom = 1
	}
	s.Progress = float64(s.Completed) / float64(denom)
	if s.Progress > 1 {
		s.Progress = 1
	}
	return s
}
