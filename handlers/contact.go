package handlers

import (
	"net/http"

	"wavehouse/models"
	"wavehouse/services/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var in models.ContactInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := h.Service.Submit(c.Request.Context(), in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thanks! We'll get back to you within 24 hours."})
}
