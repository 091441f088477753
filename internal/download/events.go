package download

// Event is emitted by a running fetch task
type Event interface {
	TaskID() string
}

// ProgressEvent carries one progress sample from the engine
type ProgressEvent struct {
	ID     string
	Sample Sample
}

func (e ProgressEvent) TaskID() string { return e.ID }

// FinishedEvent carries the terminal outcome; it is always the last event of a task
type FinishedEvent struct {
	ID      string
	Outcome Outcome
}

func (e FinishedEvent) TaskID() string { return e.ID }

// OutcomeStatus is the terminal status of a fetch
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeError   OutcomeStatus = "error"
)

// Outcome is the single terminal result of a fetch task
type Outcome struct {
	Status     OutcomeStatus
	Message    string // human-readable failure message, empty on success
	OutputPath string // file written by the engine, when known
}

// Succeeded returns true for a success outcome
func (o Outcome) Succeeded() bool {
	return o.Status == OutcomeSuccess
}

// Success builds a success outcome
func Success(outputPath string) Outcome {
	return Outcome{Status: OutcomeSuccess, OutputPath: outputPath}
}

// Failure builds an error outcome with the given message
func Failure(message string) Outcome {
	return Outcome{Status: OutcomeError, Message: message}
}
