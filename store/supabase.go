package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
)

// SupabaseStore implements the car, booking and user ports on the hosted
// Supabase tables (cars, bookings, users). Every write is a single-row
// atomic operation; concurrent admin edits are last-writer-wins.
type SupabaseStore struct {
	client *supa.Client
}

func NewSupabaseStore(client *supa.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) ListCars(ctx context.Context) ([]models.Car, error) {
	data, _, err := s.client.From("cars").
		Select("*", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "list cars", Err: err}
	}

	var cars []models.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, &booking.PersistenceError{Op: "decode cars", Err: err}
	}
	return cars, nil
}

func (s *SupabaseStore) GetCar(ctx context.Context, id int) (*models.Car, error) {
	data, _, err := s.client.From("cars").
		Select("*", "", false).
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "get car", Err: err}
	}

	var cars []models.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, &booking.PersistenceError{Op: "decode car", Err: err}
	}
	if len(cars) == 0 {
		return nil, &booking.NotFoundError{Resource: "car", ID: strconv.Itoa(id)}
	}
	return &cars[0], nil
}

func (s *SupabaseStore) ListBookings(ctx context.Context, f booking.ListFilter) ([]models.Booking, error) {
	query := s.client.From("bookings").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	if f.UserID != "" {
		query = query.Eq("user_id", f.UserID)
	}
	if f.Status != "" {
		query = query.Eq("status", string(f.Status))
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "list bookings", Err: err}
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, &booking.PersistenceError{Op: "decode bookings", Err: err}
	}
	return bookings, nil
}

func (s *SupabaseStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	data, _, err := s.client.From("bookings").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "get booking", Err: err}
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, &booking.PersistenceError{Op: "decode booking", Err: err}
	}
	if len(bookings) == 0 {
		return nil, &booking.NotFoundError{Resource: "booking", ID: id}
	}
	return &bookings[0], nil
}

func (s *SupabaseStore) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	row := map[string]interface{}{
		"id":        b.ID,
		"user_id":   b.UserID,
		"car_id":    b.CarID,
		"car_name":  b.CarName,
		"check_in":  b.CheckIn,
		"check_out": b.CheckOut,
		"days":      b.Days,
		"duration":  b.Duration,
		"price":     b.Price,
		"total":     b.Total,
		"status":    b.Status,
	}

	data, _, err := s.client.From("bookings").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return nil, err
	}

	var created []models.Booking
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return b, nil
	}
	return &created[0], nil
}

func (s *SupabaseStore) UpdateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	updateData := map[string]interface{}{
		"status":     b.Status,
		"updated_at": b.UpdatedAt,
	}

	data, _, err := s.client.From("bookings").
		Update(updateData, "", "").
		Eq("id", b.ID).
		Execute()
	if err != nil {
		return nil, err
	}

	var updated []models.Booking
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, &booking.NotFoundError{Resource: "booking", ID: b.ID}
	}
	return &updated[0], nil
}

func (s *SupabaseStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	row := map[string]interface{}{
		"id":            u.ID,
		"full_name":     u.FullName,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"role":          u.Role,
	}

	data, _, err := s.client.From("users").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "create user", Err: err}
	}

	var created []models.User
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, &booking.PersistenceError{Op: "decode user", Err: err}
	}
	if len(created) == 0 {
		return u, nil
	}
	return &created[0], nil
}

func (s *SupabaseStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser("email", email)
}

func (s *SupabaseStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser("id", id)
}

func (s *SupabaseStore) getUser(column, value string) (*models.User, error) {
	data, _, err := s.client.From("users").
		Select("*", "", false).
		Eq(column, value).
		Execute()
	if err != nil {
		return nil, &booking.PersistenceError{Op: "get user", Err: err}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, &booking.PersistenceError{Op: "decode user", Err: err}
	}
	if len(users) == 0 {
		return nil, &booking.NotFoundError{Resource: "user", ID: value}
	}
	return &users[0], nil
}
