package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, ViewExplore, s.View)
	assert.Empty(t, s.LoggedInUser)
	assert.Zero(t, s.SelectedEventID)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
		want  State
	}{
		{
			name:  "login without phone goes to addPhone",
			state: State{View: ViewAuth},
			event: LoginSucceeded{Username: "alice", HasPhone: false},
			want:  State{View: ViewAddPhone, LoggedInUser: "alice"},
		},
		{
			name:  "login with phone goes to dashboard",
			state: State{View: ViewAuth},
			event: LoginSucceeded{Username: "alice", HasPhone: true},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "session restore behaves like login",
			state: State{View: ViewExplore},
			event: SessionRestored{Username: "bob", HasPhone: true},
			want:  State{View: ViewDashboard, LoggedInUser: "bob"},
		},
		{
			name: "logout clears selection and returns to explore",
			state: State{
				View:               ViewViewEvent,
				LoggedInUser:       "alice",
				SelectedEventID:    42,
				ViewingProfileUser: "bob",
				SearchTerm:         "picnic",
			},
			event: LoggedOut{},
			want:  State{View: ViewExplore, SearchTerm: "picnic"},
		},
		{
			name:  "login request from explore",
			state: State{View: ViewExplore, ViewingProfileUser: "bob"},
			event: LoginRequested{},
			want:  State{View: ViewAuth},
		},
		{
			name:  "login request is a no-op when logged in",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: LoginRequested{},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "phone added advances to dashboard",
			state: State{View: ViewAddPhone, LoggedInUser: "alice"},
			event: PhoneAdded{},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "create event requires a phone",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: CreateEventRequested{HasPhone: false},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "create event with phone",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: CreateEventRequested{HasPhone: true},
			want:  State{View: ViewCreateEvent, LoggedInUser: "alice"},
		},
		{
			name:  "created event is selected and shown",
			state: State{View: ViewCreateEvent, LoggedInUser: "alice"},
			event: EventCreated{EventID: 99},
			want:  State{View: ViewViewEvent, LoggedInUser: "alice", SelectedEventID: 99},
		},
		{
			name:  "view event from public profile clears profile selection",
			state: State{View: ViewPublicProfile, ViewingProfileUser: "bob"},
			event: ViewEventRequested{EventID: 7},
			want:  State{View: ViewViewEvent, SelectedEventID: 7},
		},
		{
			name:  "edit requires a selected event",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: EditEventRequested{},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "edit with selection",
			state: State{View: ViewViewEvent, LoggedInUser: "alice", SelectedEventID: 7},
			event: EditEventRequested{},
			want:  State{View: ViewEditEvent, LoggedInUser: "alice", SelectedEventID: 7},
		},
		{
			name:  "save returns to dashboard and clears selection",
			state: State{View: ViewEditEvent, LoggedInUser: "alice", SelectedEventID: 7},
			event: EventSaved{},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "back from event view goes to dashboard when logged in",
			state: State{View: ViewViewEvent, LoggedInUser: "alice", SelectedEventID: 7},
			event: BackFromViewEvent{},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "back from event view goes to explore when logged out",
			state: State{View: ViewViewEvent, SelectedEventID: 7},
			event: BackFromViewEvent{},
			want:  State{View: ViewExplore},
		},
		{
			name:  "navigate to profile clears selection",
			state: State{View: ViewViewEvent, LoggedInUser: "alice", SelectedEventID: 7},
			event: NavigateRequested{Target: ViewProfile},
			want:  State{View: ViewProfile, LoggedInUser: "alice"},
		},
		{
			name:  "navigate rejects non-icon targets",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: NavigateRequested{Target: ViewAuth},
			want:  State{View: ViewDashboard, LoggedInUser: "alice"},
		},
		{
			name:  "view profile selects the user",
			state: State{View: ViewExplore, SelectedEventID: 7},
			event: ViewProfileRequested{Username: "bob"},
			want:  State{View: ViewPublicProfile, ViewingProfileUser: "bob"},
		},
		{
			name:  "search term change keeps the view",
			state: State{View: ViewDashboard, LoggedInUser: "alice"},
			event: SearchChanged{Term: "bbq"},
			want:  State{View: ViewDashboard, LoggedInUser: "alice", SearchTerm: "bbq"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.state, tt.event))
		})
	}
}

// Reduce must never mutate its input.
func TestReducePure(t *testing.T) {
	original := State{View: ViewDashboard, LoggedInUser: "alice", SelectedEventID: 7}
	snapshot := original

	_ = Reduce(original, LoggedOut{})
	_ = Reduce(original, NavigateRequested{Target: ViewExplore})

	assert.Equal(t, snapshot, original)
}
