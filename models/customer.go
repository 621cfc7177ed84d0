package models

// CustomerStatus tracks whether a guest is on the premises
type CustomerStatus string

const (
	CustomerCheckedIn  CustomerStatus = "checked-in"
	CustomerCheckedOut CustomerStatus = "checked-out"
)

const (
	FieldName         = "name"
	FieldMobile       = "mobile"
	FieldWalletAmount = "walletAmount"
	FieldCheckinTime  = "checkinTime"
	FieldCheckoutTime = "checkoutTime"
)
