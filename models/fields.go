package models

// Attribute names shared across entities.
const (
	FieldCreatedAt     = "createdAt"
	FieldUpdatedAt     = "updatedAt"
	FieldTimestamp     = "timestamp"
	FieldCustomerID    = "customerId"
	FieldStatus        = "status"
	FieldService       = "service"
	FieldTotalAmount   = "totalAmount"
	FieldPaymentMethod = "paymentMethod"
	FieldOrderID       = "orderId"
	FieldBookingID     = "bookingId"
)
