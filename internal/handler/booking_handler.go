package handler

import (
	"fmt"
	"net/http"

	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking creates a pending emergency bed booking
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Validation Error", "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.bookingService.Create(input)
	if err != nil {
		respondBookingError(c, err, input.HospitalID, "Booking creation failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": receipt,
	})
}

// GetBooking retrieves a booking with its hospital resolved
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(id)
	if err != nil {
		respondBookingError(c, err, id, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ConfirmBooking confirms a booking and takes one bed from its hospital
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	booking, bedsAfter, err := h.bookingService.Confirm(id)
	if err != nil {
		respondBookingError(c, err, id, "Booking confirmation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed successfully",
		"booking": gin.H{
			"id":                 booking.ID,
			"patientName":        booking.PatientName,
			"hospitalName":       booking.HospitalName,
			"status":             booking.Status,
			"confirmationDate":   booking.ConfirmationDate,
			"availableBedsAfter": bedsAfter,
		},
	})
}

// CancelBooking cancels a booking, restoring the bed when the booking
// was confirmed
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	bookingID, err := h.bookingService.Cancel(id)
	if err != nil {
		respondBookingError(c, err, id, "Booking cancellation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Booking cancelled successfully",
		"bookingId": bookingID,
	})
}

// DownloadConfirmation streams the confirmation form PDF for a
// confirmed booking
func (h *BookingHandler) DownloadConfirmation(c *gin.Context) {
	id, ok := parseID(c, "Invalid booking ID")
	if !ok {
		return
	}

	buf, filename, err := h.bookingService.GenerateConfirmation(id)
	if err != nil {
		respondBookingError(c, err, id, "PDF generation failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(buf)))
	c.Data(http.StatusOK, "application/pdf", buf)
}
