package constants

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// StatusForProgress derives the task status from a progress value.
// Progress always wins when a request carries both.
func StatusForProgress(progress int) TaskStatus {
	switch {
	case progress == 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}
