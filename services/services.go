package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

// Services is every repository and entity service the HTTP layer needs, all sharing one
// store handle.
type Services struct {
	Store store.Store
	log   logrus.FieldLogger

	Customers        *CustomerService
	Games            *Repository
	Bookings         *Repository
	MenuItems        *Repository
	Combos           *Repository
	RestaurantOrders *Repository
	Kitchen          *KitchenService
	BakeryItems      *Repository
	BakeryOrders     *Repository
	JuiceItems       *Repository
	JuiceOrders      *Repository
	MassageItems     *Repository
	MassageOrders    *Repository
	PoolTypes        *Repository
	PoolOrders       *Repository
	TaxSettings      *Repository
	Rooms            *Repository
}

// New wires the repositories. A nil clock means time.Now.
func New(s store.Store, now Clock, log logrus.FieldLogger) *Services {
	if now == nil {
		now = time.Now
	}
	repo := func(schema Schema) *Repository {
		return NewRepository(s, schema, now, log)
	}
	counterOrder := func(c store.Collection, prefix string) *Repository {
		return repo(Schema{
			Collection:   c,
			NewID:        prefixedID(prefix),
			TrackUpdates: true,
			Overrides:    models.Document{models.FieldStatus: models.OrderPending},
			SortBy:       models.FieldCreatedAt,
		})
	}
	counterItem := func(c store.Collection, prefix string) *Repository {
		return repo(Schema{Collection: c, NewID: prefixedID(prefix), TrackUpdates: true})
	}

	customers := repo(Schema{
		Collection: store.Customers,
		NewID:      func() string { return customerID(now()) },
		Stamps:     []string{models.FieldCreatedAt, models.FieldCheckinTime},
		Defaults:   models.Document{models.FieldWalletAmount: 0.0},
		Overrides:  models.Document{models.FieldStatus: string(models.CustomerCheckedIn)},
		SortBy:     models.FieldCheckinTime,
	})
	restaurantOrders := repo(Schema{
		Collection: store.RestaurantOrders,
		NewID:      prefixedID("order_"),
		Stamps:     []string{models.FieldTimestamp},
		Defaults:   models.Document{models.FieldStatus: string(models.KitchenPending)},
		SortBy:     models.FieldTimestamp,
	})

	return &Services{
		Store:     s,
		log:       log,
		Customers: &CustomerService{repo: customers, store: s, now: now, log: log},
		Games: repo(Schema{
			Collection: store.Games,
			NewID:      prefixedID("game_"),
			Stamps:     []string{models.FieldCreatedAt},
			Defaults:   models.Document{"coins": "-", "minutes": 0.0},
		}),
		Bookings: repo(Schema{
			Collection: store.Bookings,
			NewID:      bookingID,
			Stamps:     []string{models.FieldTimestamp},
			Defaults: models.Document{
				models.FieldCustomerID:    models.WalkInCustomerID,
				"customerName":            "Walk-in Customer",
				"customerMobile":          "",
				"totalCoins":              0.0,
				models.FieldPaymentMethod: models.DefaultPaymentMethod,
			},
			SortBy: models.FieldTimestamp,
		}),
		MenuItems: repo(Schema{
			Collection: store.MenuItems,
			NewID:      prefixedID("menu_"),
			Stamps:     []string{models.FieldCreatedAt},
			Defaults:   models.Document{"available": true},
		}),
		Combos: repo(Schema{
			Collection: store.Combos,
			NewID:      prefixedID("combo_"),
			Stamps:     []string{models.FieldCreatedAt},
			Defaults:   models.Document{"active": true},
		}),
		RestaurantOrders: restaurantOrders,
		Kitchen:          &KitchenService{orders: restaurantOrders},
		BakeryItems:      counterItem(store.BakeryItems, "bakery_"),
		BakeryOrders:     counterOrder(store.BakeryOrders, "bakery_order_"),
		JuiceItems:       counterItem(store.JuiceItems, "juice_"),
		JuiceOrders:      counterOrder(store.JuiceOrders, "juice_order_"),
		MassageItems:     counterItem(store.MassageItems, "massage_"),
		MassageOrders:    counterOrder(store.MassageOrders, "massage_order_"),
		PoolTypes:        counterItem(store.PoolTypes, "pool_"),
		PoolOrders: repo(Schema{
			Collection:   store.PoolOrders,
			NewID:        prefixedID("pool_order_"),
			Stamps:       []string{models.FieldTimestamp},
			TrackUpdates: true,
			Overrides:    models.Document{models.FieldStatus: models.OrderConfirmed},
			SortBy:       models.FieldCreatedAt,
		}),
		TaxSettings: repo(Schema{Collection: store.TaxSettings, TrackUpdates: true}),
		Rooms: repo(Schema{
			Collection: store.Rooms,
			NewID:      roomID(now),
			KeepID:     true,
			Stamps:     []string{models.FieldCreatedAt},
		}),
	}
}

// ForCollection returns the repository writing to c.
func (s *Services) ForCollection(c store.Collection) (*Repository, bool) {
	for _, r := range []*Repository{
		s.Customers.repo, s.Games, s.Bookings, s.MenuItems, s.Combos, s.RestaurantOrders,
		s.BakeryItems, s.BakeryOrders, s.JuiceItems, s.JuiceOrders, s.MassageItems,
		s.MassageOrders, s.PoolTypes, s.PoolOrders, s.TaxSettings, s.Rooms,
	} {
		if r.Collection().Name == c.Name {
			return r, true
		}
	}
	return nil, false
}
