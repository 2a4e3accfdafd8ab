package screens

import (
	"context"

	"github.com/deffiedeff2/event-app/avatar"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
	"github.com/samber/lo"
)

// FeedItem is a public event annotated with its creator's display name and
// avatar, ready for the explore and public-profile listings.
type FeedItem struct {
	models.Event
	CreatorDisplayName     string `json:"creatorDisplayName"`
	CreatorProfileImageURL string `json:"creatorProfileImageUrl"`
}

// Explore builds the public event feed across all users.
type Explore struct {
	store *store.Store
}

// NewExplore creates the explore screen controller.
func NewExplore(s *store.Store) *Explore {
	return &Explore{store: s}
}

// PublicFeed returns every public event annotated with creator info.
// Creators without a record or picture get a generated placeholder avatar.
func (x *Explore) PublicFeed(ctx context.Context) ([]FeedItem, error) {
	events, err := x.store.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	users, err := x.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	public := lo.Filter(events, func(e models.Event, _ int) bool {
		return e.IsPublic
	})
	return lo.Map(public, func(e models.Event, _ int) FeedItem {
		return annotate(e, users)
	}), nil
}

// Annotate decorates a single event with its creator's display info.
func (x *Explore) Annotate(ctx context.Context, e models.Event) (FeedItem, error) {
	users, err := x.store.LoadUsers(ctx)
	if err != nil {
		return FeedItem{}, err
	}
	return annotate(e, users), nil
}

func annotate(e models.Event, users map[string]models.User) FeedItem {
	creator := e.Creator()
	item := FeedItem{
		Event:                  e,
		CreatorDisplayName:     creator,
		CreatorProfileImageURL: avatar.Placeholder(creator),
	}
	if user, ok := users[creator]; ok {
		if user.DisplayName != "" {
			item.CreatorDisplayName = user.DisplayName
		}
		if user.ProfileImageURL != "" {
			item.CreatorProfileImageURL = user.ProfileImageURL
		}
	}
	return item
}
