package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SeededDisabled(t *testing.T) {
	_, store, _, _ := newTestStores(t)

	status, err := store.GetStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.Nil(t, status.ExpiresAt)
	assert.Nil(t, status.Description)
}

func TestSessionStore_SetStatusRoundTrip(t *testing.T) {
	_, store, _, _ := newTestStores(t)
	ctx := context.Background()

	err := store.SetStatus(ctx, true, strPtr("2025-06-01 18:00:00"), strPtr("conference day"))
	require.NoError(t, err)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Enabled)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, "2025-06-01 18:00:00", *status.ExpiresAt)
	require.NotNil(t, status.Description)
	assert.Equal(t, "conference day", *status.Description)
}

func TestSessionStore_SetStatusClearsFields(t *testing.T) {
	_, store, _, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, true, strPtr("2025-06-01 18:00:00"), strPtr("conference day")))
	require.NoError(t, store.SetStatus(ctx, false, nil, nil))

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.Nil(t, status.ExpiresAt)
	assert.Nil(t, status.Description)
}

func TestSessionStore_LazyExpiryFlipsAndPersists(t *testing.T) {
	_, store, clock, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, true, strPtr("2025-06-01 13:00:00"), nil))

	// Still in the future: unchanged.
	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Enabled)

	clock.current = clock.current.Add(2 * time.Hour)

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Enabled, "first read past expiry must report disabled")

	// The flip is persisted, not recomputed per read.
	var row RecordingSession
	require.NoError(t, store.db.First(&row, SessionRowID).Error)
	assert.False(t, row.Enabled)
}

func TestSessionStore_ExpiryExactInstantNotExpired(t *testing.T) {
	_, store, clock, _ := newTestStores(t)
	ctx := context.Background()

	expiry := clock.current.Format("2006-01-02 15:04:05")
	require.NoError(t, store.SetStatus(ctx, true, &expiry, nil))

	// Strictly-in-the-past rule: the exact expiry instant still admits.
	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Enabled)
}

func TestSessionStore_ExpiryIgnoredWhileDisabled(t *testing.T) {
	_, store, clock, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, false, strPtr("2025-06-01 13:00:00"), nil))
	clock.current = clock.current.Add(24 * time.Hour)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.Enabled)
	require.NotNil(t, status.ExpiresAt)
	assert.Equal(t, "2025-06-01 13:00:00", *status.ExpiresAt)
}

func TestSessionStore_UnparseableExpiryFailsOpen(t *testing.T) {
	_, store, clock, logger := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, true, strPtr("not a timestamp"), nil))
	clock.current = clock.current.Add(24 * time.Hour)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Enabled, "malformed expiry must not disable the session")
	assert.Equal(t, 1, logger.warns)
}

func TestSessionStore_ReenableAfterExpiry(t *testing.T) {
	_, store, clock, _ := newTestStores(t)
	ctx := context.Background()

	require.NoError(t, store.SetStatus(ctx, true, strPtr("2025-06-01 13:00:00"), nil))
	clock.current = clock.current.Add(2 * time.Hour)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	require.False(t, status.Enabled)

	// Admin can turn it back on with a fresh window.
	later := clock.current.Add(time.Hour).Format("2006-01-02 15:04:05")
	require.NoError(t, store.SetStatus(ctx, true, &later, nil))

	status, err = store.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.Enabled)
}
