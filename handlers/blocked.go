package handlers

import (
	"fmt"
	"net/http"

	"wavehouse/models"
	"wavehouse/services/admin"

	"github.com/gin-gonic/gin"
)

// BlockedSlotHandler serves blocked slot management. Every route is admin only.
type BlockedSlotHandler struct {
	Service admin.AdminService
}

func NewBlockedSlotHandler(svc admin.AdminService) *BlockedSlotHandler {
	return &BlockedSlotHandler{Service: svc}
}

// List handles GET /api/blocked-slots.
func (h *BlockedSlotHandler) List(c *gin.Context) {
	grouped, err := h.Service.BlockedSlots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// Create handles POST /api/blocked-slots.
func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var in models.BlockedSlotInput
	if !bindJSON(c, &in) {
		return
	}
	slot, err := h.Service.BlockSlot(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Time slot blocked successfully", "blocked_slot": slot})
}

// BulkBlock handles POST /api/admin/bulk-block.
func (h *BlockedSlotHandler) BulkBlock(c *gin.Context) {
	var in models.BulkBlockInput
	if !bindJSON(c, &in) {
		return
	}
	n, err := h.Service.BulkBlock(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Successfully blocked %d time slots", n),
		"blocked_count": n,
	})
}

// Delete handles POST /api/delete-blocked-slot.
func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	var in models.DeleteSlotInput
	if !bindJSON(c, &in) {
		return
	}
	h.deleteByID(c, in.SlotID)
}

// DeleteByID handles DELETE /api/admin/blocked-slot/:id.
func (h *BlockedSlotHandler) DeleteByID(c *gin.Context) {
	h.deleteByID(c, c.Param("id"))
}

func (h *BlockedSlotHandler) deleteByID(c *gin.Context, id string) {
	if err := h.Service.DeleteBlockedSlot(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blocked slot removed successfully"})
}

// DeleteByDate handles POST /api/delete-blocked-slots-by-date.
func (h *BlockedSlotHandler) DeleteByDate(c *gin.Context) {
	var in models.DeleteSlotsByDateInput
	if !bindJSON(c, &in) {
		return
	}
	n, err := h.Service.DeleteBlockedSlotsByDate(c.Request.Context(), in.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       fmt.Sprintf("Removed %d blocked slots for %s", n, in.Date),
		"deleted_count": n,
	})
}
