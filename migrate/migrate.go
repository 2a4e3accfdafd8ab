// Package migrate applies versioned data migrations to the stored
// collections at startup.
package migrate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/store"
)

// LegacyDefaultPassword is assigned to accounts created before the password
// field existed. Every patched account is logged so operators can force
// resets.
const LegacyDefaultPassword = "changeme"

type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, s *store.Store) error
}

var migrations = []migration{
	{
		version: 1,
		name:    "assign default password to legacy accounts",
		apply:   assignLegacyPasswords,
	},
}

// Run applies every migration newer than the stored schema version and
// advances the marker. Already-applied migrations are skipped.
func Run(ctx context.Context, s *store.Store) error {
	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		log.Info("applying migration", "version", m.version, "name", m.name)
		if err := m.apply(ctx, s); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if err := s.SetSchemaVersion(ctx, m.version); err != nil {
			return err
		}
		current = m.version
	}
	return nil
}

func assignLegacyPasswords(ctx context.Context, s *store.Store) error {
	users, err := s.LoadUsers(ctx)
	if err != nil {
		return err
	}
	patched := 0
	for username, user := range users {
		if user.Password != "" {
			continue
		}
		user.Password = LegacyDefaultPassword
		users[username] = user
		patched++
		log.Warn("assigned default password to legacy account", "username", username)
	}
	if patched == 0 {
		return nil
	}
	return s.SaveUsers(ctx, users)
}
