package models

import (
	"time"

	"github.com/mergestat/timediff"

	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/screens"
	"github.com/deffiedeff2/event-app/timefmt"
)

// ToFeedItem annotates a screen feed item with relative creation times.
func ToFeedItem(item screens.FeedItem, now time.Time) FeedItem {
	out := FeedItem{
		FeedItem:   item,
		CreatedAgo: timefmt.CompactSince(item.CreatedAt, now),
	}
	if t, err := time.Parse(time.RFC3339, item.CreatedAt); err == nil {
		out.CreatedAgoLong = timediff.TimeDiff(t)
	}
	return out
}

// ToFeedItems annotates a slice of feed items.
func ToFeedItems(items []screens.FeedItem, now time.Time) []FeedItem {
	result := make([]FeedItem, len(items))
	for i, item := range items {
		result[i] = ToFeedItem(item, now)
	}
	return result
}

// ToProfile converts a stored user to its API shape, dropping the password.
func ToProfile(u models.User) Profile {
	displayName := u.DisplayName
	if displayName == "" {
		displayName = u.Username
	}
	return Profile{
		Username:        u.Username,
		DisplayName:     displayName,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		HasPhone:        u.HasPhone,
		PhoneNumber:     u.PhoneNumber,
	}
}
