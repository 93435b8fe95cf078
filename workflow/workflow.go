// Package workflow defines the bilty lifecycle state machine and the
// timeline classification used by tracking views.
package workflow

import "safeindiatransport/models"

// Lifecycle states. Created through delivered form the forward path;
// cancelled is a terminal side branch reachable from any non-terminal state.
const (
	StatusCreated   = "created"
	StatusLoaded    = "loaded"
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order is the display order of the timeline, cancelled last.
var Order = []string{
	StatusCreated,
	StatusLoaded,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

// StepState tags each timeline position for rendering.
type StepState string

const (
	StepDone      StepState = "done"
	StepCurrent   StepState = "current"
	StepCancelled StepState = "cancelled"
	StepPending   StepState = "pending"
)

// Step pairs a lifecycle status with its computed timeline state.
type Step struct {
	Status string    `json:"status"`
	State  StepState `json:"state"`
}

// Valid reports whether s is a known lifecycle status.
func Valid(s string) bool {
	return indexOf(s) >= 0
}

func indexOf(s string) int {
	for i, st := range Order {
		if st == s {
			return i
		}
	}
	return -1
}

// Terminal reports whether a bilty in status s can no longer move.
func Terminal(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether a bilty may move from one status to another.
// Forward moves follow the order; cancellation is allowed from any
// non-terminal state.
func CanTransition(from, to string) bool {
	fi, ti := indexOf(from), indexOf(to)
	if fi < 0 || ti < 0 || Terminal(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return ti > fi && ti <= indexOf(StatusDelivered)
}

// Classify computes the timeline state of every position given a bilty's
// history and current status. It never fails: an unknown current status
// degrades to an all-pending timeline with no current marker, which the
// caller renders as-is.
func Classify(history []models.StatusChange, current string) []Step {
	cancelled := current == StatusCancelled
	for _, h := range history {
		if h.Status == StatusCancelled {
			cancelled = true
			break
		}
	}

	steps := make([]Step, len(Order))
	if cancelled {
		ci := indexOf(StatusCancelled)
		for i, st := range Order {
			switch {
			case i < ci:
				steps[i] = Step{Status: st, State: StepDone}
			case i == ci:
				steps[i] = Step{Status: st, State: StepCancelled}
			default:
				steps[i] = Step{Status: st, State: StepPending}
			}
		}
		return steps
	}

	cur := indexOf(current)
	for i, st := range Order {
		switch {
		case cur >= 0 && i < cur:
			steps[i] = Step{Status: st, State: StepDone}
		case cur >= 0 && i == cur:
			steps[i] = Step{Status: st, State: StepCurrent}
		default:
			steps[i] = Step{Status: st, State: StepPending}
		}
	}
	return steps
}
