package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cleanup handles GET /cron/cleanup?key=<secret>: deletes every order in a
// terminal status (delivered, cancelled) together with its items. A wrong
// key yields 401 with no side effects. Idempotent.
func (h *Handler) Cleanup(c *gin.Context) {
	if _, err := h.CronAuth.Authenticate(c); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deleted, err := h.Catalog.CleanupOrders()
	if err != nil {
		writeError(c, err, "Failed to perform cleanup")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Cleanup completed successfully",
		"deletedCount": deleted,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
