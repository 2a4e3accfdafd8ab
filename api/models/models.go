// Package models holds the request and response shapes of the JSON API.
package models

import (
	"github.com/deffiedeff2/event-app/router"
	"github.com/deffiedeff2/event-app/scheduler"
	"github.com/deffiedeff2/event-app/screens"
)

// AuthRequest is the body of the signup and login endpoints.
type AuthRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ResetRequest is the body of the password reset endpoint.
type ResetRequest struct {
	Username           string `json:"username"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// NavigateRequest is the body of the navigation endpoint. Target is a view
// name or "back"; EventID and Username qualify event and profile targets.
type NavigateRequest struct {
	Target   string `json:"target"`
	EventID  int64  `json:"eventId,omitempty"`
	Username string `json:"username,omitempty"`
}

// SearchRequest updates the global search term.
type SearchRequest struct {
	Term string `json:"term"`
}

// PhoneRequest is the body of the add-phone endpoint.
type PhoneRequest struct {
	Phone string `json:"phone"`
}

// StateResponse returns the session's routing state.
type StateResponse struct {
	State router.State `json:"state"`
}

// FeedItem is a public event annotated for display: creator info plus the
// compact and long relative creation times.
type FeedItem struct {
	screens.FeedItem
	CreatedAgo     string `json:"createdAgo"`
	CreatedAgoLong string `json:"createdAgoLong,omitempty"`
}

// EventResponse returns a single event with its annotations and state.
type EventResponse struct {
	Event FeedItem     `json:"event"`
	State router.State `json:"state"`
}

// Profile is the session user's own profile as the API exposes it. The
// stored password never leaves the server.
type Profile struct {
	Username        string `json:"username"`
	DisplayName     string `json:"displayName"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	HasPhone        bool   `json:"hasPhone"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

// StatusResponse reports process health for the status endpoint.
type StatusResponse struct {
	Status          string                        `json:"status"`
	UptimeSeconds   int64                         `json:"uptimeSeconds"`
	MemoryUsedBytes uint64                        `json:"memoryUsedBytes"`
	DataDiskFree    uint64                        `json:"dataDiskFreeBytes"`
	DataDiskUsedPct float64                       `json:"dataDiskUsedPercent"`
	Jobs            map[string]*scheduler.JobInfo `json:"jobs"`
}

// ErrorResponse carries an inline error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
