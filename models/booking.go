package models

import "time"

type Booking struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CarID     int       `json:"car_id" db:"car_id"`
	CarName   string    `json:"car_name" db:"car_name"`
	CheckIn   string    `json:"check_in" db:"check_in"`
	CheckOut  string    `json:"check_out" db:"check_out"`
	Days      int       `json:"days" db:"days"`
	Duration  string    `json:"duration" db:"duration"`
	Price     string    `json:"price" db:"price"`
	Total     string    `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateBookingRequest struct {
	CarID    int    `json:"car_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingStats is the dashboard block rendered next to a booking list.
// Revenue and TotalSpent carry the same fold; the field name follows the page.
type BookingStats struct {
	TotalOrders int    `json:"total_orders"`
	Pending     int    `json:"pending"`
	Confirmed   int    `json:"confirmed"`
	Active      int    `json:"active"`
	Completed   int    `json:"completed"`
	Cancelled   int    `json:"cancelled"`
	Revenue     string `json:"revenue"`
}

type BookingListResponse struct {
	Bookings []Booking    `json:"bookings"`
	Stats    BookingStats `json:"stats"`
}
