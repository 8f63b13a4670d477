package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gorent/backend-rental/booking"
)

// Tool is a declarative tool definition in the Anthropic Messages API shape.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// RentalTools declares the three assistant tools: inventory search, policy
// lookup and support escalation.
func RentalTools() []Tool {
	return []Tool{
		{
			Name:        "search_cars",
			Description: "Search for cars in the GO-RENT inventory with optional filters",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"brand": map[string]interface{}{
						"type":        "string",
						"description": "Car brand to filter by",
					},
					"type": map[string]interface{}{
						"type":        "string",
						"description": "Car type to filter by (SUV, Sedan, etc)",
					},
					"max_price": map[string]interface{}{
						"type":        "number",
						"description": "Maximum price per day",
					},
				},
			},
		},
		{
			Name:        "get_booking_info",
			Description: "Get information about rental policies, booking process, and terms",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"topic": map[string]interface{}{
						"type":        "string",
						"description": "Topic: rental-duration, pricing, cancellation, insurance, payment",
					},
				},
				"required": []string{"topic"},
			},
		},
		{
			Name:        "contact_support",
			Description: "Escalate to human support or get support contact information",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"issue": map[string]interface{}{
						"type":        "string",
						"description": "Description of the issue",
					},
				},
				"required": []string{"issue"},
			},
		},
	}
}

// ToolExecutor answers tool calls server-side. Only search_cars touches
// state, and only through the read-only catalog port.
type ToolExecutor struct {
	cars booking.CarStore
}

func NewToolExecutor(cars booking.CarStore) *ToolExecutor {
	return &ToolExecutor{cars: cars}
}

type searchCarsInput struct {
	Brand    string  `json:"brand"`
	Type     string  `json:"type"`
	MaxPrice float64 `json:"max_price"`
}

type carResult struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"price_per_day"`
	Type        string  `json:"type"`
}

func (t *ToolExecutor) Execute(ctx context.Context, name string, input json.RawMessage) (string, error) {
	switch name {
	case "search_cars":
		return t.searchCars(ctx, input)
	case "get_booking_info":
		return t.bookingInfo(input)
	case "contact_support":
		return t.contactSupport(input)
	}
	return "", fmt.Errorf("unknown tool %q", name)
}

func (t *ToolExecutor) searchCars(ctx context.Context, input json.RawMessage) (string, error) {
	var in searchCarsInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &in); err != nil {
			return "", fmt.Errorf("invalid search_cars input: %w", err)
		}
	}

	cars, err := t.cars.ListCars(ctx)
	if err != nil {
		return "", err
	}

	results := make([]carResult, 0, len(cars))
	for _, c := range cars {
		if in.Brand != "" && !strings.EqualFold(c.Brand, in.Brand) {
			continue
		}
		if in.Type != "" && !strings.EqualFold(c.Type, in.Type) {
			continue
		}
		rate, err := booking.ParseDayRateCents(c.Price)
		if err != nil {
			continue
		}
		perDay := float64(rate) / 100
		if in.MaxPrice > 0 && perDay > in.MaxPrice {
			continue
		}
		results = append(results, carResult{
			Name:        c.Brand,
			Model:       c.Model,
			PricePerDay: perDay,
			Type:        c.Type,
		})
	}

	out, err := json.Marshal(map[string]interface{}{"cars": results})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (t *ToolExecutor) bookingInfo(input json.RawMessage) (string, error) {
	var in struct {
		Topic string `json:"topic"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid get_booking_info input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(in.Topic)) {
	case "rental-duration":
		return "Rentals run from the check-in date to the check-out date. Partial days are billed as full days, with a one-day minimum.", nil
	case "pricing":
		return "The total price is the car's daily rate multiplied by the number of rental days. The rate shown at booking time is locked in for the whole rental.", nil
	case "cancellation":
		return "Pending bookings can be cancelled free of charge from the My Bookings page. Confirmed bookings cannot be cancelled online; contact support for assistance.", nil
	case "insurance":
		return "All rentals include basic collision coverage. Premium coverage with zero deductible can be added at pickup.", nil
	case "payment":
		return "We accept all major credit cards. Payment is collected at pickup; no charge is made when the booking is created.", nil
	}
	return "We cover rental-duration, pricing, cancellation, insurance and payment. Ask about one of those topics or contact support for anything else.", nil
}

func (t *ToolExecutor) contactSupport(input json.RawMessage) (string, error) {
	var in struct {
		Issue string `json:"issue"`
	}
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid contact_support input: %w", err)
	}
	return fmt.Sprintf("Your issue (%q) has been noted. Reach our support team at support@go-rent.example or +1-800-GO-RENT, available 24/7.", in.Issue), nil
}
