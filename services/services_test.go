package services

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "resort.db"), "Test", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	_, err = s.Provision(context.Background(), store.All()...)
	require.NoError(t, err)
	return New(s, func() time.Time { return fixedNow }, log)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	t.Run("booking defaults and timestamp", func(t *testing.T) {
		b, err := svc.Bookings.Create(ctx, models.Document{"items": []interface{}{"game_1"}, "totalAmount": 60.0, "service": "Games", "customerId": ""})
		require.NoError(t, err)
		assert.Regexp(t, `^BK-[0-9A-F]{8}$`, b.String("bookingId"))
		assert.Equal(t, models.WalkInCustomerID, b["customerId"])
		assert.Equal(t, "Walk-in Customer", b["customerName"])
		assert.Equal(t, models.DefaultPaymentMethod, b["paymentMethod"])
		assert.Equal(t, "2025-03-14T09:30:00.000Z", b["timestamp"])
		assert.NotContains(t, b, "createdAt")
	})

	t.Run("counter orders force pending and track updates", func(t *testing.T) {
		o, err := svc.JuiceOrders.Create(ctx, models.Document{"customerId": "JJ-1", "status": "served", "totalAmount": 90.0})
		require.NoError(t, err)
		assert.Equal(t, models.OrderPending, o["status"])
		assert.Equal(t, o["createdAt"], o["updatedAt"])
		assert.Regexp(t, `^juice_order_`, o.String("orderId"))
	})

	t.Run("pool orders are confirmed with both stamps", func(t *testing.T) {
		o, err := svc.PoolOrders.Create(ctx, models.Document{"totalAmount": 200.0})
		require.NoError(t, err)
		assert.Equal(t, models.OrderConfirmed, o["status"])
		assert.Equal(t, o["timestamp"], o["createdAt"])
	})

	t.Run("menu item availability defaults on", func(t *testing.T) {
		m, err := svc.MenuItems.Create(ctx, models.Document{"name": "Kheer", "available": false})
		require.NoError(t, err)
		assert.Equal(t, false, m["available"])
		m, err = svc.MenuItems.Create(ctx, models.Document{"name": "Lassi"})
		require.NoError(t, err)
		assert.Equal(t, true, m["available"])
	})

	t.Run("rooms keep a supplied id", func(t *testing.T) {
		r, err := svc.Rooms.Create(ctx, models.Document{"roomId": "room_custom", "name": "Hut"})
		require.NoError(t, err)
		assert.Equal(t, "room_custom", r["roomId"])
		r, err = svc.Rooms.Create(ctx, models.Document{"name": "Hut"})
		require.NoError(t, err)
		assert.Equal(t, "room_1741944600000", r["roomId"])
	})

	t.Run("tax settings need a caller key", func(t *testing.T) {
		_, err := svc.TaxSettings.Create(ctx, models.Document{"taxPercent": 5.0})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	item, err := svc.BakeryItems.Create(ctx, models.Document{"name": "Croissant", "price": 60.0})
	require.NoError(t, err)
	id := item.String("itemId")

	t.Run("changes only named fields and cannot move the key", func(t *testing.T) {
		got, err := svc.BakeryItems.Update(ctx, id, map[string]interface{}{"price": 70.0, "itemId": "stolen", "updatedAt": "1999-01-01T00:00:00.000Z"})
		require.NoError(t, err)
		assert.Equal(t, id, got["itemId"])
		assert.Equal(t, 70.0, got["price"])
		assert.Equal(t, "Croissant", got["name"])
		assert.Equal(t, models.Timestamp(fixedNow), got["updatedAt"])

		fetched, err := svc.BakeryItems.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, got, fetched)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.BakeryItems.Update(ctx, "bakery_ghost", map[string]interface{}{"price": 1.0})
		assert.ErrorIs(t, err, models.ErrNotFound)
		_, err = svc.BakeryItems.Get(ctx, "bakery_ghost")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, svc.BakeryItems.Delete(ctx, id))
		require.NoError(t, svc.BakeryItems.Delete(ctx, id))
		_, err := svc.BakeryItems.Get(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestRepository_Listing(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	for _, o := range []models.Document{
		{"orderId": "m1", "customerId": "JJ-A", "createdAt": "2025-03-01T10:00:00.000Z"},
		{"orderId": "m2", "customerId": "JJ-A", "createdAt": "2025-03-05T10:00:00.000Z"},
		{"orderId": "m3", "customerId": "JJ-B", "createdAt": "2025-03-03T10:00:00.000Z"},
	} {
		require.NoError(t, svc.Store.Put(ctx, store.MassageOrders, o))
	}

	all, err := svc.MassageOrders.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m2", all[0].String("orderId"))
	assert.Equal(t, "m1", all[2].String("orderId"))

	mine, err := svc.MassageOrders.ListByCustomer(ctx, "JJ-A")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "m2", mine[0].String("orderId"))

	b, err := svc.Bookings.Create(ctx, models.Document{"customerId": "JJ-A", "totalAmount": 30.0, "service": "Games"})
	require.NoError(t, err)
	byIndex, err := svc.Bookings.ListByCustomer(ctx, "JJ-A")
	require.NoError(t, err)
	require.Len(t, byIndex, 1)
	assert.Equal(t, b["bookingId"], byIndex[0]["bookingId"])
}

func TestRepository_Seed(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	docs, err := svc.Rooms.Seed(ctx, []models.Document{{"roomId": "room_1", "price": 4000.0}}, true)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, models.Timestamp(fixedNow), docs[0]["createdAt"])

	got, err := svc.Rooms.Get(ctx, "room_1")
	require.NoError(t, err)
	assert.Equal(t, 4000.0, got["price"])
}
