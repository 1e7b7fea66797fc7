package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"soloapp/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	session := &models.BookingSession{SessionID: "s-1", ProfessionalID: 7, State: models.StateSelectingDate}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Equal(t, session, got)

	// Mutating the returned copy must not leak back into the store.
	got.State = models.StateBooked
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Equal(t, models.StateSelectingDate, again.State)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	require.NoError(t, store.Save(ctx, &models.BookingSession{SessionID: "s-2"}))
	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "s-2")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Save(ctx, &models.BookingSession{SessionID: "s-3"}))
	require.NoError(t, store.Delete(ctx, "s-3"))

	_, err := store.Get(ctx, "s-3")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}
