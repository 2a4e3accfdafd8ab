package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/models"
)

// Keys of the persisted top-level entries.
const (
	UsersKey         = "eventAppUsers"
	EventsKey        = "eventAppEvents"
	SchemaVersionKey = "eventAppSchemaVersion"
)

// KV is the durable key-value store the collections live in. Values are
// opaque JSON documents; implementations don't interpret them.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store reads and writes the Users and Events collections as whole JSON
// documents. Every mutation is load-modify-save of the full collection; there
// is no locking, so two concurrent writers race and the last save wins.
type Store struct {
	kv KV
}

// New creates a Store backed by the given key-value store.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Close closes the underlying key-value store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// LoadUsers returns the Users collection keyed by username. A missing or
// unparseable entry yields an empty map rather than an error.
func (s *Store) LoadUsers(ctx context.Context) (map[string]models.User, error) {
	data, ok, err := s.kv.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	users := make(map[string]models.User)
	if !ok {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		log.Warn("users collection is corrupt, starting from empty", "error", err)
		return make(map[string]models.User), nil
	}
	return users, nil
}

// SaveUsers overwrites the Users collection.
func (s *Store) SaveUsers(ctx context.Context, users map[string]models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.kv.Set(ctx, UsersKey, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// LoadEvents returns the Events collection in stored order. A missing or
// unparseable entry yields an empty slice rather than an error.
func (s *Store) LoadEvents(ctx context.Context) ([]models.Event, error) {
	data, ok, err := s.kv.Get(ctx, EventsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if !ok {
		return []models.Event{}, nil
	}
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		log.Warn("events collection is corrupt, starting from empty", "error", err)
		return []models.Event{}, nil
	}
	return events, nil
}

// SaveEvents overwrites the Events collection.
func (s *Store) SaveEvents(ctx context.Context, events []models.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	if err := s.kv.Set(ctx, EventsKey, data); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}

// SchemaVersion returns the applied migration version, 0 when unset.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	data, ok, err := s.kv.Get(ctx, SchemaVersionKey)
	if err != nil {
		return 0, fmt.Errorf("failed to load schema version: %w", err)
	}
	if !ok {
		return 0, nil
	}
	var version int
	if err := json.Unmarshal(data, &version); err != nil {
		log.Warn("schema version entry is corrupt, assuming 0", "error", err)
		return 0, nil
	}
	return version, nil
}

// SetSchemaVersion records the applied migration version.
func (s *Store) SetSchemaVersion(ctx context.Context, version int) error {
	data, err := json.Marshal(version)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, SchemaVersionKey, data); err != nil {
		return fmt.Errorf("failed to save schema version: %w", err)
	}
	return nil
}

// Reset deletes both collections and the schema version marker.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{UsersKey, EventsKey, SchemaVersionKey} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}
