package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorent/backend-rental/store"
)

func executor() *ToolExecutor {
	return NewToolExecutor(store.NewMemoryStore())
}

type searchResult struct {
	Cars []struct {
		Name        string  `json:"name"`
		Model       string  `json:"model"`
		PricePerDay float64 `json:"price_per_day"`
		Type        string  `json:"type"`
	} `json:"cars"`
}

func runSearch(t *testing.T, input string) searchResult {
	t.Helper()
	out, err := executor().Execute(context.Background(), "search_cars", json.RawMessage(input))
	require.NoError(t, err)
	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestSearchCars(t *testing.T) {
	t.Run("no filters returns everything", func(t *testing.T) {
		result := runSearch(t, `{}`)
		assert.Len(t, result.Cars, len(store.SeedCars()))
	})

	t.Run("brand filter is case-insensitive", func(t *testing.T) {
		result := runSearch(t, `{"brand":"bmw"}`)
		require.Len(t, result.Cars, 1)
		assert.Equal(t, "BMW", result.Cars[0].Name)
		assert.Equal(t, 249.0, result.Cars[0].PricePerDay)
	})

	t.Run("type filter", func(t *testing.T) {
		result := runSearch(t, `{"type":"SUV"}`)
		require.Len(t, result.Cars, 1)
		assert.Equal(t, "SUV", result.Cars[0].Type)
	})

	t.Run("max price filter", func(t *testing.T) {
		result := runSearch(t, `{"max_price":250}`)
		require.NotEmpty(t, result.Cars)
		for _, c := range result.Cars {
			assert.LessOrEqual(t, c.PricePerDay, 250.0)
		}
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		result := runSearch(t, `{"brand":"Lada"}`)
		assert.Empty(t, result.Cars)
	})
}

func TestBookingInfoTopics(t *testing.T) {
	topics := []string{"rental-duration", "pricing", "cancellation", "insurance", "payment"}
	for _, topic := range topics {
		input, _ := json.Marshal(map[string]string{"topic": topic})
		out, err := executor().Execute(context.Background(), "get_booking_info", input)
		require.NoError(t, err, topic)
		assert.NotEmpty(t, out, topic)
	}

	out, err := executor().Execute(context.Background(), "get_booking_info", json.RawMessage(`{"topic":"weather"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "contact support")
}

func TestContactSupport(t *testing.T) {
	out, err := executor().Execute(context.Background(), "contact_support", json.RawMessage(`{"issue":"flat tire"}`))
	require.NoError(t, err)
	assert.Contains(t, out, "flat tire")
	assert.Contains(t, out, "support@go-rent.example")
}

func TestUnknownTool(t *testing.T) {
	_, err := executor().Execute(context.Background(), "book_flight", json.RawMessage(`{}`))
	assert.Error(t, err)
}
