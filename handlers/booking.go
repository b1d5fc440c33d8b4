package handlers

import (
	"net/http"

	"wavehouse/models"
	"wavehouse/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking flow and the admin booking views.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := h.Service.CreateBooking(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"message":               "Booking request submitted successfully",
		"booking":               res.Booking,
		"requires_verification": res.RequiresVerification,
		"client_id":             res.ClientID,
	}
	if res.RequiresVerification {
		body["verification_message"] = "ID verification required for first-time clients"
	}
	c.JSON(http.StatusCreated, body)
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/:id.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var in models.BookingStatusInput
	if !bindJSON(c, &in) {
		return
	}
	b, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking " + b.Status + " successfully", "booking": b})
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted successfully"})
}

// Availability handles GET /api/availability.
func (h *BookingHandler) Availability(c *gin.Context) {
	unavailable, err := h.Service.Availability(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unavailable)
}

// EngineerRequest handles POST /api/engineer-request.
func (h *BookingHandler) EngineerRequest(c *gin.Context) {
	h.serviceRequest(c, models.ServiceEngineerRequest, "Engineer request submitted successfully")
}

// MixingRequest handles POST /api/mixing-request.
func (h *BookingHandler) MixingRequest(c *gin.Context) {
	h.serviceRequest(c, models.ServiceMixingRequest, "Mixing request submitted successfully")
}

func (h *BookingHandler) serviceRequest(c *gin.Context, kind, message string) {
	var in models.ServiceRequestInput
	if !bindJSON(c, &in) {
		return
	}
	b, err := h.Service.CreateServiceRequest(c.Request.Context(), kind, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message, "request": b})
}

// CreateDeposit handles POST /api/bookings/:id/deposit.
func (h *BookingHandler) CreateDeposit(c *gin.Context) {
	dep, err := h.Service.CreateDeposit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dep)
}
