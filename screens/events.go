package screens

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/images"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
)

// EventInput carries the editable fields of an event. Image holds raw upload
// bytes to validate and embed; RemoveImage clears an existing attachment.
// With neither set, an edit keeps the stored image.
type EventInput struct {
	Title       string
	Date        string
	Description string
	Background  models.Background
	IsPublic    bool
	Image       []byte
	RemoveImage bool
}

// Events handles event creation, viewing, editing and RSVPs.
type Events struct {
	store *store.Store
	now   func() time.Time
}

// NewEvents creates the event screen controller.
func NewEvents(s *store.Store) *Events {
	return &Events{store: s, now: time.Now}
}

// Create validates the input and appends a new event owned by username.
// The event ID is the creation timestamp in unix milliseconds.
func (e *Events) Create(ctx context.Context, username string, in EventInput) (models.Event, error) {
	if username == "" {
		return models.Event{}, ErrNotLoggedIn
	}
	if in.Title == "" || in.Date == "" || in.Description == "" {
		return models.Event{}, validationf("All fields are required.")
	}
	background := in.Background
	if background == "" {
		background = models.BackgroundParticles
	}
	if !background.Valid() {
		return models.Event{}, validationf("Unknown background pattern.")
	}

	var imageURL string
	if len(in.Image) > 0 {
		uri, err := images.EventAttachment(in.Image)
		if err != nil {
			return models.Event{}, err
		}
		imageURL = uri
	}

	now := e.now()
	event := models.Event{
		ID:              now.UnixMilli(),
		UserID:          username,
		CreatorUsername: username,
		Title:           in.Title,
		Date:            in.Date,
		Description:     in.Description,
		Background:      background,
		IsPublic:        in.IsPublic,
		ImageURL:        imageURL,
		CreatedAt:       now.UTC().Format(time.RFC3339),
	}

	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return models.Event{}, err
	}
	events = append(events, event)
	if err := e.store.SaveEvents(ctx, events); err != nil {
		return models.Event{}, err
	}
	log.Info("event created", "id", event.ID, "owner", username, "public", event.IsPublic)
	return event, nil
}

// Get returns the event with the given ID. Public access: no session needed.
func (e *Events) Get(ctx context.Context, id int64) (models.Event, error) {
	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return models.Event{}, err
	}
	for _, event := range events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, ErrNotFound
}

// Update rewrites the event in place. Only the owner may edit; the stored
// record is untouched when the authorization or validation check fails.
func (e *Events) Update(ctx context.Context, username string, id int64, in EventInput) (models.Event, error) {
	if username == "" {
		return models.Event{}, ErrNotLoggedIn
	}
	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return models.Event{}, err
	}
	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Event{}, ErrNotFound
	}
	if events[idx].UserID != username {
		return models.Event{}, ErrUnauthorized
	}
	if in.Title == "" || in.Date == "" || in.Description == "" {
		return models.Event{}, validationf("All fields are required.")
	}

	updated := events[idx]
	updated.Title = in.Title
	updated.Date = in.Date
	updated.Description = in.Description
	updated.IsPublic = in.IsPublic
	if in.Background != "" {
		if !in.Background.Valid() {
			return models.Event{}, validationf("Unknown background pattern.")
		}
		updated.Background = in.Background
	}

	switch {
	case in.RemoveImage:
		updated.ImageURL = ""
	case len(in.Image) > 0:
		uri, err := images.EventAttachment(in.Image)
		if err != nil {
			return models.Event{}, err
		}
		updated.ImageURL = uri
	}

	events[idx] = updated
	if err := e.store.SaveEvents(ctx, events); err != nil {
		return models.Event{}, err
	}
	log.Info("event updated", "id", id, "owner", username)
	return updated, nil
}

// RSVP appends username to the event's RSVP list. A user may RSVP at most
// once; the stored list is only touched when persistence succeeds.
func (e *Events) RSVP(ctx context.Context, username string, id int64) (models.Event, error) {
	if username == "" {
		return models.Event{}, ErrNotLoggedIn
	}
	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return models.Event{}, err
	}
	for i := range events {
		if events[i].ID != id {
			continue
		}
		if events[i].HasRSVP(username) {
			return models.Event{}, ErrDuplicateRSVP
		}
		updated := events[i]
		updated.RSVPs = append(append([]string{}, updated.RSVPs...), username)
		events[i] = updated
		if err := e.store.SaveEvents(ctx, events); err != nil {
			return models.Event{}, err
		}
		log.Info("rsvp recorded", "id", id, "username", username)
		return updated, nil
	}
	return models.Event{}, ErrNotFound
}
