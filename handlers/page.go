package handlers

import (
	"net/http"
	"strings"

	"wavehouse/services/catalog"
	"wavehouse/utils"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the page shell and the public catalog.
type PageHandler struct {
	Catalog *catalog.Catalog
	Health  *utils.HealthMonitor
}

func NewPageHandler(cat *catalog.Catalog, health *utils.HealthMonitor) *PageHandler {
	return &PageHandler{Catalog: cat, Health: health}
}

// Index renders the single page.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.Catalog.Page())
}

// NotFound serves the page shell for unknown browser paths and a JSON 404 for the API.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
		utils.JSONError(c, http.StatusNotFound, "Not found", c.Request.URL.Path)
		return
	}
	h.Index(c)
}

// Services handles GET /api/services.
func (h *PageHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Services())
}

// HealthCheck handles GET /health.
func (h *PageHandler) HealthCheck(c *gin.Context) {
	checks := h.Health.Status()
	status, code := "healthy", http.StatusOK
	if !checks.Healthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "service": "wave-house", "checks": checks})
}
