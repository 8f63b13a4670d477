package models

// Car is a catalog entry. Rows are seeded once and never mutated by the
// booking flow; Price keeps the display format used by the storefront
// ("$149/day") and is parsed into cents at the booking boundary.
type Car struct {
	ID          int    `json:"id" db:"id"`
	Brand       string `json:"brand" db:"brand"`
	Model       string `json:"model" db:"model"`
	Type        string `json:"type" db:"type"`
	Year        int    `json:"year" db:"year"`
	Seats       int    `json:"seats" db:"seats"`
	Gear        string `json:"gear" db:"gear"`
	Color       string `json:"color" db:"color"`
	Price       string `json:"price" db:"price"`
	Description string `json:"description" db:"description"`
	Image       string `json:"image" db:"image"`
}

// DisplayName is the denormalized name stored on bookings, e.g. "BMW M4".
func (c Car) DisplayName() string {
	return c.Brand + " " + c.Model
}
