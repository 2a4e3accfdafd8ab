package screens

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/images"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
	"github.com/samber/lo"
)

// ProfileInput carries the editable profile fields. Image holds raw upload
// bytes; RemoveImage clears the stored picture.
type ProfileInput struct {
	DisplayName string
	Bio         string
	Image       []byte
	RemoveImage bool
}

// Profile edits the session user's own profile and resolves other users'
// public profiles.
type Profile struct {
	store *store.Store
}

// NewProfile creates the profile screen controller.
func NewProfile(s *store.Store) *Profile {
	return &Profile{store: s}
}

// Get returns the session user's own record.
func (p *Profile) Get(ctx context.Context, username string) (models.User, error) {
	users, err := p.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, exists := users[username]
	if !exists {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// Update persists the profile edits. An uploaded picture is validated
// (2 MB cap, PNG/JPEG only) and normalized before being embedded.
func (p *Profile) Update(ctx context.Context, username string, in ProfileInput) (models.User, error) {
	if username == "" {
		return models.User{}, ErrNotLoggedIn
	}
	users, err := p.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, exists := users[username]
	if !exists {
		return models.User{}, ErrNotFound
	}

	user.DisplayName = in.DisplayName
	if user.DisplayName == "" {
		user.DisplayName = username
	}
	user.Bio = in.Bio

	switch {
	case in.RemoveImage:
		user.ProfileImageURL = ""
	case len(in.Image) > 0:
		uri, err := images.ProfileAttachment(in.Image)
		if err != nil {
			return models.User{}, err
		}
		user.ProfileImageURL = uri
	}

	users[username] = user
	if err := p.store.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	log.Info("profile updated", "username", username)
	return user, nil
}

// Public resolves a user's public profile and their public events only.
func (p *Profile) Public(ctx context.Context, username string) (models.PublicProfile, []FeedItem, error) {
	users, err := p.store.LoadUsers(ctx)
	if err != nil {
		return models.PublicProfile{}, nil, err
	}
	user, exists := users[username]
	if !exists {
		return models.PublicProfile{}, nil, ErrNotFound
	}

	events, err := p.store.LoadEvents(ctx)
	if err != nil {
		return models.PublicProfile{}, nil, err
	}
	owned := lo.Filter(events, func(e models.Event, _ int) bool {
		return e.UserID == username && e.IsPublic
	})
	items := lo.Map(owned, func(e models.Event, _ int) FeedItem {
		return annotate(e, users)
	})
	return models.ToPublicProfile(user), items, nil
}
