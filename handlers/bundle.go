package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the middleware the routes need.
type HandlerBundle struct {
	Booking *BookingHandler
	Admin   *AdminHandler
	Blocked *BlockedSlotHandler
	Contact *ContactHandler
	Page    *PageHandler

	// AdminAuth guards every admin route.
	AdminAuth gin.HandlerFunc
	// LoginLimiter throttles password attempts per client IP.
	LoginLimiter gin.HandlerFunc
}
