package domain

// SessionState is the protocol state of one connection.
// The only transitions are AwaitingName -> Active -> Terminated and AwaitingName -> Terminated.
type SessionState int

const (
	AwaitingName SessionState = iota
	Active
	Terminated
)

func (s SessionState) String() string {
	switch s {
	case AwaitingName:
		return "AWAITING_NAME"
	case Active:
		return "ACTIVE"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}
