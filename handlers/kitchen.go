package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jamjam-resort-api/statemachine"
)

// UpdateKitchenStatus moves a restaurant order's kitchen-order ticket along its lifecycle.
func (h *Handler) UpdateKitchenStatus(c *gin.Context) {
	var req kitchenStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}
	order, err := h.svc.Kitchen.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err, "Order not found", "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdatePaymentMethod records how a restaurant order was settled.
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "paymentMethod is required")
		return
	}
	order, err := h.svc.Kitchen.SetPaymentMethod(c.Request.Context(), c.Param("id"), req.PaymentMethod)
	if err != nil {
		h.fail(c, err, "Order not found", "Failed to update payment method")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetStateMachineInfo returns the kitchen ticket lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": statemachine.TerminalStates(),
		"description":     "Restaurant Kitchen Order Ticket (KOT) Lifecycle",
	})
}
