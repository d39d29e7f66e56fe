package runner

// State is where the runner is in a session.
type State uint8

const (
	Uninitialized State = iota
	Configured
	AwaitingDecision
	Emitting
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configured:
		return "configured"
	case AwaitingDecision:
		return "awaiting-decision"
	case Emitting:
		return "emitting"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	}
	return "unknown"
}
