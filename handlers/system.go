package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jamjam-resort-api/models"
)

// Root identifies the service.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "Jam Jam Resort API",
		"timestamp": models.Timestamp(h.now()),
	})
}

// Health reports liveness and uptime in seconds.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"uptime": h.now().Sub(h.started).Seconds(),
	})
}

// Init creates any missing tables and seeds the defaults into the new ones.
func (h *Handler) Init(c *gin.Context) {
	created, err := h.svc.Initialize(c.Request.Context(), h.defaults)
	if err != nil {
		h.fail(c, err, "", "Failed to initialize database")
		return
	}
	names := make([]string, len(created))
	for i, coll := range created {
		names[i] = coll.Name
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database initialized successfully",
		"created": names,
	})
}
