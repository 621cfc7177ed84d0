package routes

import (
	"github.com/gin-gonic/gin"

	"jamjam-resort-api/handlers"
)

// crud registers the five uniform routes of a collection on g.
func crud(g *gin.RouterGroup, r *handlers.Resource) {
	key := "/:" + r.Param()
	g.GET("", r.List)
	g.POST("", r.Create)
	g.GET(key, r.Get)
	g.PUT(key, r.Update)
	g.DELETE(key, r.Delete)
}

// orders adds the per-customer listing to a collection's CRUD routes.
func orders(g *gin.RouterGroup, r *handlers.Resource) {
	crud(g, r)
	g.GET("/customer/:customerId", r.ByCustomer)
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Root)

	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/init", h.Init)

	// ── Customers ──────────────────────────────────────────────────
	customers := api.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/search", h.SearchCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
		customers.POST("/:id/checkout", h.CheckoutCustomer)
	}

	// ── Game zone ──────────────────────────────────────────────────
	games := api.Group("/games")
	crud(games, h.Games)
	games.POST("/init", h.InitGames)

	bookings := api.Group("/bookings")
	orders(bookings, h.Bookings)

	// ── Restaurant ─────────────────────────────────────────────────
	crud(api.Group("/menu"), h.Menu)
	crud(api.Group("/combos"), h.Combos)

	restaurantOrders := api.Group("/restaurant-orders")
	orders(restaurantOrders, h.RestaurantOrders)
	restaurantOrders.PATCH("/:id/status", h.UpdateKitchenStatus)
	restaurantOrders.PATCH("/:id/payment", h.UpdatePaymentMethod)
	restaurantOrders.GET("/state-machine", h.GetStateMachineInfo)

	// ── Counters: bakery, juice bar, spa, pool ─────────────────────
	crud(api.Group("/bakery-items"), h.BakeryItems)
	orders(api.Group("/bakery-orders"), h.BakeryOrders)
	crud(api.Group("/juice-items"), h.JuiceItems)
	orders(api.Group("/juice-orders"), h.JuiceOrders)
	crud(api.Group("/massage-items"), h.MassageItems)
	orders(api.Group("/massage-orders"), h.MassageOrders)
	crud(api.Group("/pool-types"), h.PoolTypes)
	orders(api.Group("/pool-orders"), h.PoolOrders)

	// ── Tax settings ───────────────────────────────────────────────
	tax := api.Group("/tax-settings")
	{
		tax.GET("", h.TaxSettings.List)
		tax.POST("", h.TaxSettings.Create)
		tax.GET("/:serviceId", h.TaxSettings.Get)
		tax.PUT("/:serviceId", h.UpdateTaxSetting)
	}

	// ── Rooms ──────────────────────────────────────────────────────
	rooms := api.Group("/rooms")
	crud(rooms, h.Rooms)
	rooms.POST("/init", h.InitRooms)
	rooms.POST("/upload-url", h.GetRoomUploadURL)
	rooms.POST("/upload", h.UploadRoomImage)

	// ── Admin ──────────────────────────────────────────────────────
	admin := api.Group("/admin")
	{
		admin.GET("/stats", h.AdminStats)
		admin.GET("/orders", h.AdminOrders)
	}
}
