package export

// State is a terminal state of the poll loop.
type State string

const (
	StateCompleted      State = "completed"
	StateFailed         State = "failed"
	StateTimedOut       State = "timed_out"
	StateTransportError State = "transport_error"
)

// Result is the outcome of Poll.
type Result struct {
	State         State
	Attempts      int
	LastTaskState string // last currentState reported by the server
	Href          string // artifact URL, completed only
	Filename      string // server-suggested filename, completed only
	ErrorMessage  string // failed and transport_error only
}

// Ok reports whether the export finished with a downloadable artifact.
func (r Result) Ok() bool {
	return r.State == StateCompleted
}
