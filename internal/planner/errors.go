package planner

import "errors"

// Sentinel errors returned (wrapped) by Planner mutators. When a mutator
// returns an error the planner state is unchanged.
var (
	// ErrNotFound means an event, task, sub-task, vendor, category or
	// template id did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a required field was empty or a value was out of range.
	ErrValidation = errors.New("invalid input")

	// ErrLastEvent means the caller tried to delete the only remaining event.
	ErrLastEvent = errors.New("cannot delete the last event: create another event first")
)
