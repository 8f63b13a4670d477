package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
)

type BookingsHandler struct {
	engine   *booking.Engine
	bookings booking.BookingStore
}

func NewBookingsHandler(engine *booking.Engine, bookings booking.BookingStore) *BookingsHandler {
	return &BookingsHandler{
		engine:   engine,
		bookings: bookings,
	}
}

// GetMyBookings returns the caller's bookings plus the stat block rendered
// above the list. Stats fold over the full list; the status filter only
// narrows the rows shown.
func (h *BookingsHandler) GetMyBookings(c *gin.Context) {
	userID, _ := c.Get("user_id")
	status := c.Query("status")

	list, err := h.bookings.ListBookings(c.Request.Context(), booking.ListFilter{
		UserID: userID.(string),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch bookings",
		})
		return
	}

	stats := booking.Summarize(list)
	filtered := booking.FilterByStatus(list, status)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.BookingListResponse{
			Bookings: filtered,
			Stats:    stats.Display(),
		},
	})
}

// GetQuote prices a prospective rental without writing anything.
func (h *BookingsHandler) GetQuote(c *gin.Context) {
	carID, err := strconv.Atoi(c.Query("car_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid car id",
		})
		return
	}

	quote, err := h.engine.Quote(c.Request.Context(), carID, c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: gin.H{
			"days":     quote.Days,
			"duration": quote.DurationDisplay(),
			"total":    quote.TotalDisplay(),
		},
	})
}

func (h *BookingsHandler) CreateBooking(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	fmt.Printf("[CreateBooking] user=%v car=%d check_in=%s check_out=%s\n",
		userID, req.CarID, req.CheckIn, req.CheckOut)

	userIDStr, _ := userID.(string)
	created, err := h.engine.Submit(c.Request.Context(), userIDStr, req.CarID, req.CheckIn, req.CheckOut)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Booking created successfully",
		Data:    created,
	})
}

func (h *BookingsHandler) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("id")
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	b, err := h.bookings.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	// Customers can only see their own bookings
	roleStr, ok := role.(string)
	userIDStr, ok2 := userID.(string)
	if ok && ok2 && roleStr == "customer" && b.UserID != userIDStr {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    b,
	})
}

func (h *BookingsHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	b, err := h.bookings.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	roleStr, ok := role.(string)
	userIDStr, ok2 := userID.(string)
	if ok && ok2 && roleStr == "customer" && b.UserID != userIDStr {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Not allowed",
		})
		return
	}

	fmt.Printf("[CancelBooking] user=%v booking=%s status=%s\n", userID, bookingID, b.Status)

	cancelled, err := h.engine.Transition(c.Request.Context(), bookingID, booking.StatusCancelled)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking cancelled successfully",
		Data:    cancelled,
	})
}

// writeEngineError maps the engine's error taxonomy onto the response
// envelope: validation inline, not-found displayable, persistence as a
// retry prompt.
func writeEngineError(c *gin.Context, err error) {
	var (
		ve *booking.ValidationError
		na *booking.NotAuthenticatedError
		nf *booking.NotFoundError
		pe *booking.PersistenceError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   ve.Msg,
		})
	case errors.As(err, &na):
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Please log in to make a booking",
		})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   fmt.Sprintf("%s not found", capitalize(nf.Resource)),
		})
	case errors.As(err, &pe):
		fmt.Printf("[Bookings] Persistence error: %v\n", pe)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save booking. Please try again.",
		})
	default:
		fmt.Printf("[Bookings] Unexpected error: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Internal error",
		})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
