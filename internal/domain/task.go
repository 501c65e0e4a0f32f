package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ParseTaskStatus maps a raw string onto a known status value.
func ParseTaskStatus(raw string) (TaskStatus, bool) {
	switch TaskStatus(raw) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(raw), true
	}
	return "", false
}

// Task represents a unit of work owned by exactly one user.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
