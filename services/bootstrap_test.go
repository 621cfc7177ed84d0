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
	"jamjam-resort-api/seed"
	"jamjam-resort-api/store"
)

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "init.db"), "Test", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	svc := New(s, func() time.Time { return fixedNow }, log)

	defaults, err := seed.Load()
	require.NoError(t, err)

	created, err := svc.Initialize(ctx, defaults)
	require.NoError(t, err)
	assert.Len(t, created, len(store.All()))

	games, err := svc.Games.List(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 14)
	assert.Equal(t, models.Timestamp(fixedNow), games[0]["createdAt"])

	tax, err := svc.TaxSettings.Get(ctx, "massage")
	require.NoError(t, err)
	assert.Equal(t, 18.0, tax["taxPercent"])

	// A second run finds every table and leaves edits alone.
	_, err = svc.TaxSettings.Update(ctx, "massage", map[string]interface{}{"taxPercent": 12.0})
	require.NoError(t, err)
	created, err = svc.Initialize(ctx, defaults)
	require.NoError(t, err)
	assert.Empty(t, created)
	tax, err = svc.TaxSettings.Get(ctx, "massage")
	require.NoError(t, err)
	assert.Equal(t, 12.0, tax["taxPercent"])
}
