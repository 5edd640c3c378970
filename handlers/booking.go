package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /booking.
// A duplicate booking is an expected negative result: 200 with success=false,
// matching how the frontend treats conflicts as data rather than errors.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}
	if req.Treatment == "" || req.Date == "" || req.Slot == "" || req.Patient == "" {
		utils.JSONError(c, http.StatusBadRequest, "treatment, date, slot and patient are required", "")
		return
	}

	created, err := h.Service.CreateBooking(&req)
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyBooked) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Already booked"})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking Success", "result": created})
}

// GetBookings handles GET /booking. The patient query parameter must match
// the authenticated caller; anything else is a Forbidden, not an empty list.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" || patient != middleware.CallerEmail(c) {
		utils.JSONError(c, http.StatusForbidden, "Forbidden access", "")
		return
	}

	bookings, err := h.Service.GetBookingsForPatient(patient)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": bookings})
}

// GetBookingByID handles GET /booking/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("failed to fetch booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// PayBooking handles PATCH /booking/:id: records the payment and marks the
// booking paid.
func (h *BookingHandler) PayBooking(c *gin.Context) {
	var req struct {
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TransactionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "transactionId is required", "")
		return
	}

	if err := h.Service.RecordPayment(c.Param("id"), req.TransactionID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("failed to record payment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "A positive price is required", "")
		return
	}

	clientSecret, err := h.Service.CreatePaymentIntent(req.Price)
	if err != nil {
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
