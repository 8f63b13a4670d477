package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
)

type AdminHandler struct {
	engine   *booking.Engine
	bookings booking.BookingStore
}

func NewAdminHandler(engine *booking.Engine, bookings booking.BookingStore) *AdminHandler {
	return &AdminHandler{
		engine:   engine,
		bookings: bookings,
	}
}

// GetAllBookings is the admin dashboard feed: every booking, newest first,
// with the order/revenue counters folded over the full set. The optional
// status query narrows the rows but never the counters.
func (h *AdminHandler) GetAllBookings(c *gin.Context) {
	status := c.Query("status")

	list, err := h.bookings.ListBookings(c.Request.Context(), booking.ListFilter{})
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

func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	status, err := booking.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Unknown status, expected one of Pending, Confirmed, Completed, Cancelled",
		})
		return
	}

	fmt.Printf("[UpdateBookingStatus] booking=%s -> %s\n", bookingID, status)

	updated, err := h.engine.Transition(c.Request.Context(), bookingID, status)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking updated successfully",
		Data:    updated,
	})
}
