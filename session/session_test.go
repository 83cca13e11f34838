package session_test

import (
	"context"
	"testing"

	"golden-wok/order"
	"golden-wok/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadUnknownSessionIsEmpty(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()

	state := store.Load(context.Background(), "nope")

	assert.Empty(t, state.History)
	assert.Nil(t, state.Order)
}

func TestMemoryStore_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	saved := session.State{
		History: []session.Turn{{User: "hi", Bot: "hello!", Timestamp: "2026-08-28T12:00:00Z", Mode: "ordering"}},
		Order:   &order.Order{Items: []order.Item{{Name: "Fried Rice", Quantity: 1, Price: "8"}}},
	}
	require.NoError(t, store.Save(ctx, "s1", saved))

	state := store.Load(ctx, "s1")
	require.Len(t, state.History, 1)
	assert.Equal(t, "hi", state.History[0].User)
	require.NotNil(t, state.Order)
	assert.Equal(t, "Fried Rice", state.Order.Items[0].Name)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", session.State{History: []session.Turn{{User: "a says"}}}))
	require.NoError(t, store.Save(ctx, "b", session.State{History: []session.Turn{{User: "b says"}}}))

	assert.Equal(t, "a says", store.Load(ctx, "a").History[0].User)
	assert.Equal(t, "b says", store.Load(ctx, "b").History[0].User)
}

func TestMemoryStore_LoadedHistoryIsACopy(t *testing.T) {
	t.Parallel()
	store := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s", session.State{History: []session.Turn{{User: "original"}}}))

	state := store.Load(ctx, "s")
	state.History[0].User = "mutated"

	assert.Equal(t, "original", store.Load(ctx, "s").History[0].User)
}
