package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-assistant-api/models"
	"finance-assistant-api/services"
)

// TipHandler serves the daily-tip endpoints.
type TipHandler struct {
	Tips *services.TipService
}

// GetDailyTip returns the general tip for today (cached per UTC day).
func (h *TipHandler) GetDailyTip(c *gin.Context) {
	now := time.Now()
	tip := h.Tips.GenerateDailyTip(c.Request.Context(), "general", "", now)

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"tip":       tip,
		"timestamp": now.Format(time.RFC3339),
		"cached":    tip.Date == now.UTC().Format("2006-01-02"),
	})
}

// PostDailyTip returns a category-specific tip; non-general categories
// are generated fresh every call.
func (h *TipHandler) PostDailyTip(c *gin.Context) {
	var req models.DailyTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	now := time.Now()
	tip := h.Tips.GenerateDailyTip(c.Request.Context(), category, "", now)

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"tip":       tip,
		"category":  category,
		"timestamp": now.Format(time.RFC3339),
		"cached":    tip.Date == now.UTC().Format("2006-01-02") && tip.CachedAt != "",
	})
}
