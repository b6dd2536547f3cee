package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-sim/internal/models"
	"chat-sim/internal/telemetry"
)

// RegisterDebugRoutes wires debug-only endpoints.
func RegisterDebugRoutes(router *gin.Engine, emitter *telemetry.Emitter, enabled bool) {
	if !enabled {
		return
	}

	router.GET("/debug/event-test", func(c *gin.Context) {
		if emitter == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event emitter not configured"})
			return
		}
		emitter.Emit(models.StoreEvent{Event: "event_test"})
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
