package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamjam-resort-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.KitchenStatus
		ok       bool
	}{
		{models.KitchenPending, models.KitchenPreparing, true},
		{models.KitchenPreparing, models.KitchenReady, true},
		{models.KitchenReady, models.KitchenServed, true},
		{models.KitchenPending, models.KitchenCancelled, true},
		{models.KitchenReady, models.KitchenCancelled, false},
		{models.KitchenServed, models.KitchenPending, false},
		{models.KitchenPending, models.KitchenServed, false},
		{"", models.KitchenReady, true},
		{"on-hold", models.KitchenServed, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var te *TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, ValidTransitionsFrom(tt.from), te.Valid)
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.Equal(t, []models.KitchenStatus{models.KitchenServed, models.KitchenCancelled}, TerminalStates())
	assert.Contains(t, (&TransitionError{From: models.KitchenServed, To: models.KitchenReady}).Error(), "terminal")
}
