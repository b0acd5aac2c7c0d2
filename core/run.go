package core

// RunStatus describes the lifecycle state of a single orchestrated run.
type RunStatus string

const (
	// StatusRunning indicates turns are still being dispatched.
	StatusRunning RunStatus = "running"
	// StatusTerminated indicates the termination condition (or the safety
	// ceiling) ended the run normally.
	StatusTerminated RunStatus = "terminated"
	// StatusFailed indicates an agent invocation failed and the run stopped.
	StatusFailed RunStatus = "failed"
	// StatusCancelled indicates cooperative cancellation between turns.
	StatusCancelled RunStatus = "cancelled"
)

// Terminal reports whether the status is final. A finished run is not
// reusable; construct a new run for a new task.
func (s RunStatus) Terminal() bool { return s != StatusRunning }

// Run is the record of one execution of the orchestrator from task submission
// to a terminal state. History retains every message produced up to the point
// the run ended, including partial results of failed or cancelled runs.
type Run struct {
	ID      string    `json:"id"`
	Agents  []string  `json:"agents"` // Configured dispatch order
	Status  RunStatus `json:"status"`
	History *History  `json:"-"`
	Err     error     `json:"-"` // Terminal error for StatusFailed
}
