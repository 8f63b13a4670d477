package booking

import (
	"fmt"
	"time"

	"github.com/gorent/backend-rental/models"
)

// Status is persisted as a display-cased string, matching what the
// storefront renders on the booking cards.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// AllowTransition is the directed graph of permitted status changes.
// Completed and Cancelled are terminal.
var AllowTransition = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// CanTransition reports whether from -> to is a permitted edge.
// Same-state is allowed so a repeated admin click stays harmless.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition mutates the booking's status in place. Duration and total
// are the durable record from submission time and are never recomputed here.
func ApplyTransition(b *models.Booking, to Status, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	from := Status(b.Status)
	if !CanTransition(from, to) {
		return &ValidationError{Msg: fmt.Sprintf("cannot change booking status from %s to %s", from, to)}
	}
	b.Status = string(to)
	b.UpdatedAt = now
	return nil
}
