package handlers

import (
	"errors"
	"net/http"

	"wavehouse/services/admin"
	"wavehouse/services/booking"
	"wavehouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", verr.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", "")
	case errors.Is(err, booking.ErrSlotConflict):
		utils.JSONError(c, http.StatusBadRequest, "This time slot conflicts with an existing booking", "")
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "This time slot is not available", "")
	case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, admin.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Invalid status", "")
	case errors.Is(err, booking.ErrNoDeposit):
		utils.JSONError(c, http.StatusBadRequest, "No deposit is due for this booking", "")
	case errors.Is(err, admin.ErrSlotExists):
		utils.JSONError(c, http.StatusConflict, "Time slot already blocked", "")
	case errors.Is(err, admin.ErrInvalidPassword):
		utils.JSONError(c, http.StatusUnauthorized, "Incorrect password", "")
	case errors.Is(err, admin.ErrAdminDisabled), errors.Is(err, booking.ErrPaymentsDisabled):
		utils.JSONError(c, http.StatusServiceUnavailable, "Service unavailable", err.Error())
	default:
		getLogger(c).Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Internal Server Error",
		})
	}
}

// bindJSON binds the request body and answers 400 when it does not validate.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// getLogger retrieves the request logger from the Gin context, falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
