package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hospital-finder-backend/internal/repository"
	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID parses the :id path parameter, replying 400 on failure
func parseID(c *gin.Context, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", message)
		return 0, false
	}
	return uint(id), true
}

func respondHospitalError(c *gin.Context, err error, id uint) {
	if errors.Is(err, repository.ErrHospitalNotFound) {
		utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found",
			fmt.Sprintf("No hospital found with ID: %d", id))
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital", err.Error())
}

// respondBookingError maps the booking lifecycle error contract onto
// HTTP responses: validation and invalid transitions are 400, unresolved
// ids are 404, anything else is a 500 with the message passed through.
func respondBookingError(c *gin.Context, err error, id uint, fallbackTitle string) {
	switch {
	case service.IsValidation(err):
		utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", err.Error())
	case errors.Is(err, repository.ErrBookingNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Booking not found",
			fmt.Sprintf("No booking found with ID: %d", id))
	case errors.Is(err, repository.ErrHospitalNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found", "Associated hospital not found")
	case errors.Is(err, service.ErrAlreadyConfirmed):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid Operation", "This booking is already confirmed")
	case errors.Is(err, service.ErrAlreadyCancelled):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid Operation", "This booking is already cancelled")
	case errors.Is(err, repository.ErrNoBedsAvailable):
		utils.ErrorResponse(c, http.StatusBadRequest, "No Beds Available",
			"No emergency beds are currently available at this hospital")
	case errors.Is(err, service.ErrNotConfirmed):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid Status",
			"Only confirmed bookings can download confirmation forms")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallbackTitle, err.Error())
	}
}
