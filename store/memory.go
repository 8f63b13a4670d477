package store

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
)

// MemoryStore keeps the whole dataset in process memory behind a mutex,
// with the catalog seeded at construction. It backs local development and
// tests; the ports it implements are the same ones the Supabase store does.
type MemoryStore struct {
	mu       sync.RWMutex
	cars     []models.Car
	bookings []models.Booking
	users    map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cars:  SeedCars(),
		users: make(map[string]models.User),
	}
}

func (m *MemoryStore) ListCars(ctx context.Context) ([]models.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Car, len(m.cars))
	copy(out, m.cars)
	return out, nil
}

func (m *MemoryStore) GetCar(ctx context.Context, id int) (*models.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.cars {
		if c.ID == id {
			car := c
			return &car, nil
		}
	}
	return nil, &booking.NotFoundError{Resource: "car", ID: strconv.Itoa(id)}
}

func (m *MemoryStore) ListBookings(ctx context.Context, f booking.ListFilter) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if f.UserID != "" && b.UserID != f.UserID {
			continue
		}
		if f.Status != "" && b.Status != string(f.Status) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, &booking.NotFoundError{Resource: "booking", ID: id}
}

func (m *MemoryStore) CreateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *b
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
		row.UpdatedAt = row.CreatedAt
	}
	m.bookings = append(m.bookings, row)
	out := row
	return &out, nil
}

func (m *MemoryStore) UpdateBooking(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			m.bookings[i] = *b
			out := *b
			return &out, nil
		}
	}
	return nil, &booking.NotFoundError{Resource: "booking", ID: b.ID}
}

func (m *MemoryStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := *u
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	m.users[row.ID] = row
	out := row
	return &out, nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, &booking.NotFoundError{Resource: "user", ID: email}
}

func (m *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, &booking.NotFoundError{Resource: "user", ID: id}
	}
	out := u
	return &out, nil
}
