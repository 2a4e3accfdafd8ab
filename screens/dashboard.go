package screens

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how the dashboard list is ordered.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// Dashboard lists and deletes the session user's own events.
type Dashboard struct {
	store    *store.Store
	collator *collate.Collator
}

// NewDashboard creates the dashboard screen controller.
func NewDashboard(s *store.Store) *Dashboard {
	return &Dashboard{
		store:    s,
		collator: collate.New(language.Und),
	}
}

// List returns the events owned by username, filtered by the global search
// term (case-insensitive substring on title or description) and sorted.
// Ties keep the stored order: all sorts are stable.
func (d *Dashboard) List(ctx context.Context, username, search string, order SortOrder) ([]models.Event, error) {
	events, err := d.store.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}

	owned := lo.Filter(events, func(e models.Event, _ int) bool {
		return e.UserID == username
	})

	if search != "" {
		needle := strings.ToLower(search)
		owned = lo.Filter(owned, func(e models.Event, _ int) bool {
			return strings.Contains(strings.ToLower(e.Title), needle) ||
				strings.Contains(strings.ToLower(e.Description), needle)
		})
	}

	switch order {
	case SortOldest:
		sort.SliceStable(owned, func(i, j int) bool {
			return parseEventDate(owned[i].Date).Before(parseEventDate(owned[j].Date))
		})
	case SortTitle:
		sort.SliceStable(owned, func(i, j int) bool {
			return d.collator.CompareString(owned[i].Title, owned[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(owned, func(i, j int) bool {
			return parseEventDate(owned[j].Date).Before(parseEventDate(owned[i].Date))
		})
	}
	return owned, nil
}

// Delete removes exactly the event with the given ID. Only the owner may
// delete it.
func (d *Dashboard) Delete(ctx context.Context, username string, id int64) error {
	events, err := d.store.LoadEvents(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if events[idx].UserID != username {
		return ErrUnauthorized
	}

	events = append(events[:idx], events[idx+1:]...)
	if err := d.store.SaveEvents(ctx, events); err != nil {
		return err
	}
	log.Info("event deleted", "id", id, "owner", username)
	return nil
}

// parseEventDate parses the stored calendar date, falling back to RFC3339.
// Unparseable dates sort as the zero time.
func parseEventDate(date string) time.Time {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	return time.Time{}
}
