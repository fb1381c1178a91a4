package execution

import "sync/atomic"

// State is the lifecycle of the runner
type State int32

const (
	// Idle means no subprocess is running
	Idle State = iota
	// Running means a subprocess is in flight
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "idle"
	}
}

type stateHolder struct {
	v atomic.Int32
}

func (h *stateHolder) set(s State) {
	h.v.Store(int32(s))
}

func (h *stateHolder) get() State {
	return State(h.v.Load())
}
