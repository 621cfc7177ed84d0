package models

// KitchenStatus is the kitchen-order-ticket state of a restaurant order
type KitchenStatus string

const (
	KitchenPending   KitchenStatus = "pending"
	KitchenPreparing KitchenStatus = "preparing"
	KitchenReady     KitchenStatus = "ready"
	KitchenServed    KitchenStatus = "served"
	KitchenCancelled KitchenStatus = "cancelled"
)

// Status written on counter orders at creation.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
)

// Service labels used by the dashboard and admin order listing.
const (
	ServiceGames      = "Games"
	ServiceRestaurant = "Restaurant"
	ServiceBakery     = "Bakery"
	ServiceJuice      = "Juice"
	ServiceMassage    = "Massage"
	ServicePool       = "Pool"
)

// DefaultPaymentMethod is recorded when a booking does not name one.
const DefaultPaymentMethod = "Cash"

// WalkInCustomerID marks bookings made without a registered customer.
const WalkInCustomerID = "walk-in"
