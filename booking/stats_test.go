package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorent/backend-rental/models"
)

func sampleBookings() []models.Booking {
	return []models.Booking{
		{ID: "b1", CarName: "BMW M4", Total: "$450.00", Status: "Pending"},
		{ID: "b2", CarName: "Audi R8", Total: "$1200.00", Status: "Confirmed"},
		{ID: "b3", CarName: "Tesla Model S", Total: "$300.00", Status: "Completed"},
		{ID: "b4", CarName: "Porsche 911", Total: "$800.00", Status: "Cancelled"},
		{ID: "b5", CarName: "BMW M4", Total: "$150.00", Status: "Pending"},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleBookings())

	assert.Equal(t, 5, s.TotalOrders)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Confirmed)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.Cancelled)
	assert.Equal(t, 3, s.Active)
	assert.Equal(t, int64(290000), s.RevenueCents)
	assert.Equal(t, "$2900.00", s.Display().Revenue)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalOrders)
	assert.Equal(t, int64(0), s.RevenueCents)
	assert.Equal(t, "$0.00", s.Display().Revenue)
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]models.Booking{{Total: "$450.00", Status: "Pending"}})
	assert.Equal(t, 1, s.TotalOrders)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, int64(45000), s.RevenueCents)
}

// Confirming a pending booking moves one unit between the Pending and
// Confirmed buckets on the next fold.
func TestSummarizeAfterTransition(t *testing.T) {
	list := sampleBookings()
	before := Summarize(list)

	list[0].Status = string(StatusConfirmed)
	after := Summarize(list)

	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Confirmed+1, after.Confirmed)
	assert.Equal(t, before.RevenueCents, after.RevenueCents)
}

func TestFilterByStatus(t *testing.T) {
	list := sampleBookings()

	all := FilterByStatus(list, "All")
	assert.Equal(t, list, all)

	blank := FilterByStatus(list, "")
	assert.Equal(t, list, blank)

	cancelled := FilterByStatus(list, "Cancelled")
	assert.Len(t, cancelled, 1)
	assert.Equal(t, "b4", cancelled[0].ID)

	pending := FilterByStatus(list, "Pending")
	assert.Len(t, pending, 2)
	assert.Equal(t, "b1", pending[0].ID)
	assert.Equal(t, "b5", pending[1].ID)

	none := FilterByStatus(list, "Confirmed")
	assert.Len(t, none, 1)
	assert.Empty(t, FilterByStatus(nil, "Cancelled"))
}
