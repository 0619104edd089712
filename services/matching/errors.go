package matching

import "errors"

var (
	// ErrOrderNotFound is returned when an order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNotPending is returned by conditional order writes when the
	// order already left the pending state
	ErrOrderNotPending = errors.New("order is not pending")

	// ErrMasterClaimed is returned when the claim on a master's availability
	// lost to a concurrent assignment
	ErrMasterClaimed = errors.New("master already claimed")

	// ErrOrderNotRequeueable is returned when an order is not in a state that
	// allows requeueing
	ErrOrderNotRequeueable = errors.New("order cannot be requeued")

	// ErrRetriesExhausted is returned when the retry budget for an order is
	// spent
	ErrRetriesExhausted = errors.New("order retry budget exhausted")
)
