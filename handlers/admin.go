package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jamjam-resort-api/analytics"
)

// AdminStats returns revenue rollups for today, the last seven days, the month and the year.
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.stats.DashboardStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to get admin stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminOrders lists orders from every service, newest first, optionally bounded by
// ?startDate and ?endDate (RFC 3339 or YYYY-MM-DD, inclusive).
func (h *Handler) AdminOrders(c *gin.Context) {
	start, err := analytics.ParseBound(c.Query("startDate"), false, h.loc)
	if err != nil {
		badRequest(c, "Invalid startDate: "+err.Error())
		return
	}
	end, err := analytics.ParseBound(c.Query("endDate"), true, h.loc)
	if err != nil {
		badRequest(c, "Invalid endDate: "+err.Error())
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		badRequest(c, "endDate is before startDate")
		return
	}
	orders, err := h.stats.ListOrders(c.Request.Context(), start, end)
	if err != nil {
		h.fail(c, err, "", "Failed to get orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}
