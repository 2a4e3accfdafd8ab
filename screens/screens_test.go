package screens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
)

func newTestStore(t *testing.T) (*store.Store, *store.MemoryKV) {
	t.Helper()
	kv := store.NewMemoryKV()
	return store.New(kv), kv
}

func seedUser(t *testing.T, s *store.Store, user models.User) {
	t.Helper()
	ctx := context.Background()
	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	users[user.Username] = user
	require.NoError(t, s.SaveUsers(ctx, users))
}

func seedEvents(t *testing.T, s *store.Store, events ...models.Event) {
	t.Helper()
	require.NoError(t, s.SaveEvents(context.Background(), events))
}

func storedEvents(t *testing.T, s *store.Store) []models.Event {
	t.Helper()
	events, err := s.LoadEvents(context.Background())
	require.NoError(t, err)
	return events
}
