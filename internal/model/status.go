package model

// TaskStatus represents the status of a fetch task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the engine was not called yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the engine call is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
