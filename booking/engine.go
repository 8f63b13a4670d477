package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorent/backend-rental/models"
)

// Engine holds the booking use cases behind the store ports, independent of
// transport and of which store implementation is wired in.
type Engine struct {
	cars     CarStore
	bookings BookingStore
	now      func() time.Time
}

func NewEngine(cars CarStore, bookings BookingStore) *Engine {
	return &Engine{
		cars:     cars,
		bookings: bookings,
		now:      time.Now,
	}
}

// Quote resolves the car and prices the date range without writing anything.
func (e *Engine) Quote(ctx context.Context, carID int, checkIn, checkOut string) (*Quote, error) {
	in, out, err := parseDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	car, err := e.cars.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	q := ComputeQuote(car, in, out)
	if q == nil {
		return nil, &ValidationError{Msg: "unable to price this rental"}
	}
	return q, nil
}

// Submit creates a Pending booking for the given user and persists it.
// Duration and total are computed here and become the durable record; only
// status may change afterwards.
func (e *Engine) Submit(ctx context.Context, userID string, carID int, checkIn, checkOut string) (*models.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, &NotAuthenticatedError{}
	}
	in, out, err := parseDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	car, err := e.cars.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	q := ComputeQuote(car, in, out)
	if q == nil {
		return nil, &ValidationError{Msg: "unable to price this rental"}
	}

	now := e.now()
	b := &models.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		CarID:     car.ID,
		CarName:   car.DisplayName(),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Days:      q.Days,
		Duration:  q.DurationDisplay(),
		Price:     car.Price,
		Total:     q.TotalDisplay(),
		Status:    string(StatusPending),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := e.bookings.CreateBooking(ctx, b)
	if err != nil {
		return nil, &PersistenceError{Op: "create booking", Err: err}
	}
	return created, nil
}

// Transition moves a booking along the status graph. Edges out of terminal
// states are rejected; a same-state request returns the booking unchanged.
func (e *Engine) Transition(ctx context.Context, bookingID string, to Status) (*models.Booking, error) {
	b, err := e.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if Status(b.Status) == to {
		return b, nil
	}
	if err := ApplyTransition(b, to, e.now()); err != nil {
		return nil, err
	}
	updated, err := e.bookings.UpdateBooking(ctx, b)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "update booking", Err: err}
	}
	return updated, nil
}

func parseDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return time.Time{}, time.Time{}, &ValidationError{Msg: "check-in and check-out dates are required"}
	}
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Msg: "invalid check-in date, expected YYYY-MM-DD"}
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Msg: "invalid check-out date, expected YYYY-MM-DD"}
	}
	return in, out, nil
}
