package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
	"github.com/gorent/backend-rental/store"
)

func testRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemoryStore()
	engine := booking.NewEngine(mem, mem)

	carsHandler := NewCarsHandler(mem)
	bookingsHandler := NewBookingsHandler(engine, mem)
	adminHandler := NewAdminHandler(engine, mem)

	// Stand-in for the JWT middleware: fixed customer identity.
	asCustomer := func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "customer")
		c.Next()
	}

	r := gin.New()
	r.GET("/cars", carsHandler.GetCars)
	r.GET("/cars/:id", carsHandler.GetCarByID)
	r.GET("/bookings", asCustomer, bookingsHandler.GetMyBookings)
	r.GET("/bookings/quote", asCustomer, bookingsHandler.GetQuote)
	r.POST("/bookings", asCustomer, bookingsHandler.CreateBooking)
	r.POST("/bookings/:id/cancel", asCustomer, bookingsHandler.CancelBooking)
	r.GET("/admin/bookings", adminHandler.GetAllBookings)
	r.PUT("/admin/bookings/:id/status", adminHandler.UpdateBookingStatus)
	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetCars(t *testing.T) {
	r, _ := testRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/cars", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	w, resp = doJSON(t, r, http.MethodGet, "/cars/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	w, resp = doJSON(t, r, http.MethodGet, "/cars/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Car not found", resp.Error)

	w, _ = doJSON(t, r, http.MethodGet, "/cars/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	r, _ := testRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/bookings/quote?car_id=1&check_in=2024-01-01&check_out=2024-01-04", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["days"])
	assert.Equal(t, "3 Days", data["duration"])
	assert.Equal(t, "$747.00", data["total"])

	w, _ = doJSON(t, r, http.MethodGet, "/bookings/quote?car_id=1&check_in=&check_out=2024-01-04", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/bookings/quote?car_id=999&check_in=2024-01-01&check_out=2024-01-04", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAndCancelBooking(t *testing.T) {
	r, _ := testRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/bookings",
		`{"car_id":1,"check_in":"2024-01-01","check_out":"2024-01-04"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var created models.Booking
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, "BMW M4 Competition", created.CarName)
	assert.Equal(t, "$747.00", created.Total)

	// List includes the new booking and a stat block
	_, listResp := doJSON(t, r, http.MethodGet, "/bookings", "")
	rawList, _ := json.Marshal(listResp.Data)
	var list models.BookingListResponse
	require.NoError(t, json.Unmarshal(rawList, &list))
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, 1, list.Stats.Pending)
	assert.Equal(t, "$747.00", list.Stats.Revenue)

	// Cancel it
	w, _ = doJSON(t, r, http.MethodPost, "/bookings/"+created.ID+"/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// A second cancel is a same-state no-op
	w, _ = doJSON(t, r, http.MethodPost, "/bookings/"+created.ID+"/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateBookingValidation(t *testing.T) {
	r, _ := testRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/bookings", `{"car_id":1,"check_in":"2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/bookings",
		`{"car_id":999,"check_in":"2024-01-01","check_out":"2024-01-04"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Car not found", resp.Error)
}

func TestAdminStatusFlow(t *testing.T) {
	r, _ := testRouter(t)

	_, resp := doJSON(t, r, http.MethodPost, "/bookings",
		`{"car_id":2,"check_in":"2024-02-01","check_out":"2024-02-03"}`)
	raw, _ := json.Marshal(resp.Data)
	var created models.Booking
	require.NoError(t, json.Unmarshal(raw, &created))

	w, resp := doJSON(t, r, http.MethodPut, "/admin/bookings/"+created.ID+"/status", `{"status":"Confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	raw, _ = json.Marshal(resp.Data)
	var updated models.Booking
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Confirmed", updated.Status)

	// Dashboard counters reflect the move
	_, dash := doJSON(t, r, http.MethodGet, "/admin/bookings", "")
	rawDash, _ := json.Marshal(dash.Data)
	var board models.BookingListResponse
	require.NoError(t, json.Unmarshal(rawDash, &board))
	assert.Equal(t, 1, board.Stats.TotalOrders)
	assert.Equal(t, 0, board.Stats.Pending)
	assert.Equal(t, 1, board.Stats.Confirmed)

	// Confirmed bookings cannot be cancelled by the customer
	w, _ = doJSON(t, r, http.MethodPost, "/bookings/"+created.ID+"/cancel", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad status strings are rejected before hitting the engine
	w, _ = doJSON(t, r, http.MethodPut, "/admin/bookings/"+created.ID+"/status", `{"status":"Shipped"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStatusFilter(t *testing.T) {
	r, _ := testRouter(t)

	doJSON(t, r, http.MethodPost, "/bookings", `{"car_id":1,"check_in":"2024-01-01","check_out":"2024-01-02"}`)
	_, resp := doJSON(t, r, http.MethodPost, "/bookings", `{"car_id":2,"check_in":"2024-01-01","check_out":"2024-01-02"}`)
	raw, _ := json.Marshal(resp.Data)
	var second models.Booking
	require.NoError(t, json.Unmarshal(raw, &second))
	doJSON(t, r, http.MethodPut, "/admin/bookings/"+second.ID+"/status", `{"status":"Cancelled"}`)

	_, dash := doJSON(t, r, http.MethodGet, "/admin/bookings?status=Cancelled", "")
	rawDash, _ := json.Marshal(dash.Data)
	var board models.BookingListResponse
	require.NoError(t, json.Unmarshal(rawDash, &board))
	require.Len(t, board.Bookings, 1)
	assert.Equal(t, second.ID, board.Bookings[0].ID)
	// Counters still cover the full list
	assert.Equal(t, 2, board.Stats.TotalOrders)
}
