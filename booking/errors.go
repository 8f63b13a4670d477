package booking

import "fmt"

// ValidationError covers missing or malformed input: absent dates, bad
// status values, transitions out of a terminal state.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotAuthenticatedError is returned when a submission arrives without a
// resolved user identity.
type NotAuthenticatedError struct{}

func (e *NotAuthenticatedError) Error() string { return "not authenticated" }

// NotFoundError marks an id that did not resolve. Callers render it as a
// normal displayable state ("Car not found"), not a failure.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// PersistenceError wraps a store or network failure so it can surface to
// the user as a retry prompt instead of being swallowed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
