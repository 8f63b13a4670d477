package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gorent/backend-rental/booking"
	"github.com/gorent/backend-rental/models"
)

type CarsHandler struct {
	cars booking.CarStore
}

func NewCarsHandler(cars booking.CarStore) *CarsHandler {
	return &CarsHandler{cars: cars}
}

func (h *CarsHandler) GetCars(c *gin.Context) {
	cars, err := h.cars.ListCars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch cars",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    cars,
	})
}

func (h *CarsHandler) GetCarByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid car id",
		})
		return
	}

	car, err := h.cars.GetCar(c.Request.Context(), id)
	if err != nil {
		// Absence is a displayable state, not a failure
		var nf *booking.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Car not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch car",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    car,
	})
}
