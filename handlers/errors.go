package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jamjam-resort-api/middleware"
	"jamjam-resort-api/models"
	"jamjam-resort-api/statemachine"
)

// fail maps a service error to its response. notFound and failure are the messages shown
// for a missing record and for anything unexpected.
func (h *Handler) fail(c *gin.Context, err error, notFound, failure string) {
	var conflict *models.ConflictError
	var transition *statemachine.TransitionError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Reason, "customer": conflict.Existing})
	case errors.As(err, &transition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    transition.From,
			"requested":         transition.To,
			"reason":            transition.Error(),
			"valid_next_states": transition.Valid,
		})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"params":     c.Params,
			"request_id": middleware.GetRequestID(c),
		}).Error("❌ " + failure)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
