package booking

import "github.com/gorent/backend-rental/models"

// Stats is a pure fold over a booking list, recomputed per request. The
// lists are small and low-churn; nothing is maintained incrementally.
type Stats struct {
	TotalOrders  int
	Pending      int
	Confirmed    int
	Completed    int
	Cancelled    int
	Active       int
	RevenueCents int64
}

func Summarize(list []models.Booking) Stats {
	var s Stats
	s.TotalOrders = len(list)
	for _, b := range list {
		switch Status(b.Status) {
		case StatusPending:
			s.Pending++
		case StatusConfirmed:
			s.Confirmed++
		case StatusCompleted:
			s.Completed++
		case StatusCancelled:
			s.Cancelled++
		}
		s.RevenueCents += ParseMoneyCents(b.Total)
	}
	s.Active = s.Pending + s.Confirmed
	return s
}

// Display maps the fold onto the dashboard response block.
func (s Stats) Display() models.BookingStats {
	return models.BookingStats{
		TotalOrders: s.TotalOrders,
		Pending:     s.Pending,
		Confirmed:   s.Confirmed,
		Active:      s.Active,
		Completed:   s.Completed,
		Cancelled:   s.Cancelled,
		Revenue:     FormatCents(s.RevenueCents),
	}
}

// FilterByStatus returns entries matching status, order preserved.
// "All" (or empty) returns the input unchanged.
func FilterByStatus(list []models.Booking, status string) []models.Booking {
	if status == "" || status == "All" {
		return list
	}
	filtered := make([]models.Booking, 0, len(list))
	for _, b := range list {
		if b.Status == status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
