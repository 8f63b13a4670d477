package booking

import (
	"context"

	"github.com/gorent/backend-rental/models"
)

// CarStore is the read-only catalog port. GetCar returns *NotFoundError
// for an id that does not resolve.
type CarStore interface {
	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id int) (*models.Car, error)
}

// ListFilter narrows a booking listing. Zero values mean "all".
type ListFilter struct {
	UserID string
	Status Status
}

// BookingStore is the persistence port for booking rows. Implementations
// are expected to return lists newest-first.
type BookingStore interface {
	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error)
}
