package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jamjam-resort-api/models"
)

// CreateCustomer registers and checks in a guest. A mobile already on file is a 409 carrying
// the existing customer.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name and mobile are required")
		return
	}
	customer, err := h.svc.Customers.Create(c.Request.Context(), models.Document{
		models.FieldName:         req.Name,
		models.FieldMobile:       req.Mobile,
		models.FieldWalletAmount: req.WalletAmount,
	})
	if err != nil {
		h.fail(c, err, "Customer not found", "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// ListCustomers returns every customer, latest check-in first.
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.svc.Customers.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Customer not found", "Failed to get customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// SearchCustomers matches ?q= against names and mobile numbers.
func (h *Handler) SearchCustomers(c *gin.Context) {
	customers, err := h.svc.Customers.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.fail(c, err, "Customer not found", "Failed to search customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c *gin.Context)    { h.customers.Get(c) }
func (h *Handler) UpdateCustomer(c *gin.Context) { h.customers.Update(c) }
func (h *Handler) DeleteCustomer(c *gin.Context) { h.customers.Delete(c) }

// CheckoutCustomer marks the guest checked out.
func (h *Handler) CheckoutCustomer(c *gin.Context) {
	customer, err := h.svc.Customers.Checkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Customer not found", "Failed to checkout customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}
