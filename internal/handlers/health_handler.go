package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and which optional backends are wired
type HealthHandler struct {
	components map[string]bool
}

func NewHealthHandler(components map[string]bool) *HealthHandler {
	return &HealthHandler{components: components}
}

// Up handles GET /up for load balancers
func (h *HealthHandler) Up(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health godoc
// @Summary Health check
// @Description Liveness plus the optional components enabled at startup
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"time":       time.Now().Format(time.RFC3339),
		"components": h.components,
	})
}
