package store

import (
	"context"

	"github.com/gorent/backend-rental/models"
)

// UserStore is the identity port consumed by the auth handlers. Lookups
// that miss return *booking.NotFoundError.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
