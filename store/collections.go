package store

// Index names.
const (
	MobileIndex            = "mobile-index"
	CustomerTimestampIndex = "customerId-timestamp-index"
)

var (
	Customers = Collection{Name: "Customers", Key: "customerId", Indexes: []Index{
		{Name: MobileIndex, HashKey: "mobile"},
	}}
	Games    = Collection{Name: "Games", Key: "gameId"}
	Bookings = Collection{Name: "Bookings", Key: "bookingId", Indexes: []Index{
		{Name: CustomerTimestampIndex, HashKey: "customerId", RangeKey: "timestamp"},
	}}
	MenuItems        = Collection{Name: "MenuItems", Key: "itemId"}
	Combos           = Collection{Name: "Combos", Key: "comboId"}
	RestaurantOrders = Collection{Name: "RestaurantOrders", Key: "orderId"}
	BakeryItems      = Collection{Name: "BakeryItems", Key: "itemId"}
	BakeryOrders     = Collection{Name: "BakeryOrders", Key: "orderId"}
	JuiceItems       = Collection{Name: "JuiceItems", Key: "itemId"}
	JuiceOrders      = Collection{Name: "JuiceOrders", Key: "orderId"}
	MassageItems     = Collection{Name: "MassageItems", Key: "itemId"}
	MassageOrders    = Collection{Name: "MassageOrders", Key: "orderId"}
	PoolTypes        = Collection{Name: "PoolTypes", Key: "typeId"}
	PoolOrders       = Collection{Name: "PoolOrders", Key: "orderId"}
	TaxSettings      = Collection{Name: "TaxSettings", Key: "serviceId"}
	Rooms            = Collection{Name: "Rooms", Key: "roomId"}
)

// All lists every collection the API uses, in provisioning order.
func All() []Collection {
	return []Collection{
		Customers, Games, Bookings, MenuItems, Combos, RestaurantOrders,
		BakeryItems, BakeryOrders, JuiceItems, JuiceOrders, MassageItems, MassageOrders,
		PoolTypes, PoolOrders, TaxSettings, Rooms,
	}
}
