package handlers

import (
	"net/http"

	"wavehouse/middleware"
	"wavehouse/models"
	"wavehouse/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin session, dashboard and client endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var in models.AdminLoginInput
	if !bindJSON(c, &in) {
		return
	}
	sess, err := h.Service.Login(c.Request.Context(), in.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	token, _ := middleware.BearerToken(c)
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Stats handles GET /api/admin-stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Clients handles GET /api/admin/clients.
func (h *AdminHandler) Clients(c *gin.Context) {
	clients, err := h.Service.Clients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// VerifyClient handles POST /api/admin/clients/:id/verify.
func (h *AdminHandler) VerifyClient(c *gin.Context) {
	var in models.ClientVerificationInput
	if !bindJSON(c, &in) {
		return
	}
	client, err := h.Service.VerifyClient(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// ContactMessages handles GET /api/admin/contact-messages.
func (h *AdminHandler) ContactMessages(c *gin.Context) {
	msgs, err := h.Service.ContactMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
