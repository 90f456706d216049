// controllers/booking.go
package controllers

import (
	"net/http"

	"autocare-backend/config"
	"autocare-backend/models"
	"autocare-backend/services"
	"autocare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateBookingStatusInput defines the expected JSON structure for a status change
type UpdateBookingStatusInput struct {
	Status string `json:"status"`
}

// CreateBooking creates a new booking from a customer submission. A
// client-supplied status is never read; new bookings start Pending.
func CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := services.NewBookingService(config.DB).Create(input)
	if err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings retrieves all bookings, newest first
func GetBookings(c *gin.Context) {
	bookings, err := services.NewBookingService(config.DB).List()
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := services.NewBookingService(config.DB).Get(bookingUUID)
	if err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookingsByEmail retrieves the bookings for a customer email. No match
// is an empty list, not an error.
func GetBookingsByEmail(c *gin.Context) {
	bookings, err := services.NewBookingService(config.DB).ListByEmail(c.Param("email"))
	if err != nil {
		utils.RespondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus overwrites the booking status
func UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := services.NewBookingService(config.DB).UpdateStatus(bookingUUID, models.BookingStatus(input.Status))
	if err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking permanently
func DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := services.NewBookingService(config.DB).Delete(bookingUUID); err != nil {
		respondServiceError(c, err, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking removed"})
}
