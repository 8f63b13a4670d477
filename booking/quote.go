package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gorent/backend-rental/models"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// Quote is the ephemeral pre-submission price computation. Money is carried
// in cents and only formatted at the response boundary.
type Quote struct {
	Days         int   `json:"days"`
	DayRateCents int64 `json:"day_rate_cents"`
	TotalCents   int64 `json:"total_cents"`
}

func (q *Quote) TotalDisplay() string {
	return FormatCents(q.TotalCents)
}

func (q *Quote) DurationDisplay() string {
	if q.Days == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%d Days", q.Days)
}

// ComputeQuote computes rental duration and total. Returns nil when the car
// is missing, either date is zero, or the car's price string is unparseable.
//
// Duration takes the absolute difference so a reversed date pair prices the
// same range instead of being rejected, and ceils partial days. Equal dates
// floor at one day: a zero-day, zero-dollar booking row would be invisible
// to the revenue fold on the dashboard.
func ComputeQuote(car *models.Car, checkIn, checkOut time.Time) *Quote {
	if car == nil || checkIn.IsZero() || checkOut.IsZero() {
		return nil
	}
	rate, err := ParseDayRateCents(car.Price)
	if err != nil {
		return nil
	}

	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}

	return &Quote{
		Days:         days,
		DayRateCents: rate,
		TotalCents:   rate * int64(days),
	}
}

// ParseDayRateCents parses a catalog price string like "$149/day" or
// "$149.50/day" into cents.
func ParseDayRateCents(price string) (int64, error) {
	s := strings.TrimSpace(price)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "/day")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return int64(math.Round(f * 100)), nil
}

// ParseMoneyCents parses a stored total like "$450.00". Unparseable values
// contribute zero to aggregates rather than failing the whole fold.
func ParseMoneyCents(total string) int64 {
	s := strings.TrimPrefix(strings.TrimSpace(total), "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}

func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
