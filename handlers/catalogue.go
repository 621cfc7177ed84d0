package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jamjam-resort-api/models"
	"jamjam-resort-api/services"
	"jamjam-resort-api/store"
)

// seedDefaults writes the built-in records of c, replacing same-keyed ones.
func (h *Handler) seedDefaults(c *gin.Context, coll store.Collection, repo *services.Repository, plural string) {
	var docs []models.Document
	if h.defaults != nil {
		docs = h.defaults.For(coll)
	}
	seeded, err := repo.Seed(c.Request.Context(), docs, true)
	if err != nil {
		h.fail(c, err, "", "Failed to initialize "+plural)
		return
	}
	h.log.WithField("records", len(seeded)).Info("🌱 initialized default " + plural)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Initialized %d %s", len(seeded), plural),
		plural:    seeded,
	})
}

// InitGames loads the default arcade games.
func (h *Handler) InitGames(c *gin.Context) {
	h.seedDefaults(c, store.Games, h.svc.Games, "games")
}

// InitRooms loads the default rooms.
func (h *Handler) InitRooms(c *gin.Context) {
	h.seedDefaults(c, store.Rooms, h.svc.Rooms, "rooms")
}

// UpdateTaxSetting changes a service's tax percentage (0–100).
func (h *Handler) UpdateTaxSetting(c *gin.Context) {
	var req taxPercentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "taxPercent must be a number between 0 and 100")
		return
	}
	setting, err := h.svc.TaxSettings.Update(c.Request.Context(), c.Param("serviceId"),
		map[string]interface{}{"taxPercent": *req.TaxPercent})
	if err != nil {
		h.fail(c, err, "Tax setting not found", "Failed to update tax setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// GetRoomUploadURL presigns an upload for a room image.
func (h *Handler) GetRoomUploadURL(c *gin.Context) {
	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "fileName is required")
		return
	}
	up, err := h.images.UploadURL(c.Request.Context(), req.FileName, req.FileType)
	if err != nil {
		h.fail(c, err, "", "Failed to generate upload URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": up.UploadURL, "publicUrl": up.PublicURL})
}

// UploadRoomImage stores a base64-encoded room image.
func (h *Handler) UploadRoomImage(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "base64Data and fileName are required")
		return
	}
	up, err := h.images.Upload(c.Request.Context(), req.Base64Data, req.FileName, req.FileType)
	if err != nil {
		h.fail(c, err, "", "Failed to upload image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicUrl": up.PublicURL})
}
