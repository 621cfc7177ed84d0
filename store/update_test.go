package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jamjam-resort-api/models"
)

func TestUpdate(t *testing.T) {
	t.Run("UpdateFrom orders fields by name", func(t *testing.T) {
		u := UpdateFrom(map[string]interface{}{"price": 10.0, "name": "Tea", "available": false})
		assert.Equal(t, []string{"available", "name", "price"}, u.Fields())
	})

	t.Run("Set twice keeps last value and first position", func(t *testing.T) {
		u := NewUpdate().Set("updatedAt", "client").Set("name", "x").Set("updatedAt", "server")
		assert.Equal(t, []string{"updatedAt", "name"}, u.Fields())
		v, ok := u.Value("updatedAt")
		assert.True(t, ok)
		assert.Equal(t, "server", v)
	})

	t.Run("Without strips fields", func(t *testing.T) {
		u := UpdateFrom(map[string]interface{}{"customerId": "JJ-1", "name": "Asha"}).Without("customerId", "missing")
		assert.Equal(t, []string{"name"}, u.Fields())
		assert.Equal(t, 1, u.Len())
	})

	t.Run("Apply leaves unnamed fields and the input untouched", func(t *testing.T) {
		doc := models.Document{"gameId": "game_1", "name": "Car Racing", "rate": 60.0}
		got := NewUpdate().Set("rate", 80.0).Apply(doc)
		assert.Equal(t, models.Document{"gameId": "game_1", "name": "Car Racing", "rate": 80.0}, got)
		assert.Equal(t, 60.0, doc["rate"])
	})

	t.Run("nil update has no fields", func(t *testing.T) {
		var u *Update
		assert.Equal(t, 0, u.Len())
	})
}
