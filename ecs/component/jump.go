package component

import "github.com/milk9111/embodiment/motion"

// Jump couples the one-shot jump request with the jump/fall state machine.
// The request is an edge: Request sets it, TakeRequest hands it to the
// machine exactly once and resets it.
type Jump struct {
	requested bool

	Machine motion.JumpMachine
}

var JumpComponent = NewComponent[Jump]()

// Request raises the jump flag. It never clears a request already pending.
func (j *Jump) Request() {
	j.requested = true
}

// Requested reports whether a request is pending.
func (j *Jump) Requested() bool {
	return j.requested
}

// TakeRequest consumes the pending request.
func (j *Jump) TakeRequest() bool {
	r := j.requested
	j.requested = false
	return r
}
