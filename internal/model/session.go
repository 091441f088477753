package model

// SessionState is the state of the controller for one submission:
// Idle -> Configuring -> Running -> Succeeded|Failed -> Idle
type SessionState string

const (
	SessionIdle        SessionState = "Idle"
	SessionConfiguring SessionState = "Configuring"
	SessionRunning     SessionState = "Running"
	SessionSucceeded   SessionState = "Succeeded"
	SessionFailed      SessionState = "Failed"
)

// String returns the string representation of SessionState
func (s SessionState) String() string {
	return string(s)
}

// CanTransition reports whether moving from s to next is a legal step
func (s SessionState) CanTransition(next SessionState) bool {
	switch s {
	case SessionIdle:
		return next == SessionConfiguring
	case SessionConfiguring:
		// Configuring falls back to Idle on input errors
		return next == SessionRunning || next == SessionIdle
	case SessionRunning:
		return next == SessionSucceeded || next == SessionFailed
	case SessionSucceeded, SessionFailed:
		return next == SessionIdle
	default:
		return false
	}
}
