// Package router implements the view state machine as a pure reducer.
// Reduce never touches storage or the network; screen controllers perform
// their work first and then feed the outcome in as an event.
package router

// View is one of the application's screens.
type View string

const (
	ViewExplore       View = "explore"
	ViewAuth          View = "auth"
	ViewAddPhone      View = "addPhone"
	ViewDashboard     View = "dashboard"
	ViewCreateEvent   View = "createEvent"
	ViewEditEvent     View = "editEvent"
	ViewViewEvent     View = "viewEvent"
	ViewProfile       View = "profile"
	ViewPublicProfile View = "publicProfile"
)

// State is the complete routing state. The zero SelectedEventID and empty
// string fields mean "unset".
type State struct {
	View               View   `json:"view"`
	LoggedInUser       string `json:"loggedInUser,omitempty"`
	SelectedEventID    int64  `json:"selectedEventId,omitempty"`
	ViewingProfileUser string `json:"viewingProfileUser,omitempty"`
	SearchTerm         string `json:"searchTerm,omitempty"`
}

// NewState returns the initial state: the explore view, logged out.
func NewState() State {
	return State{View: ViewExplore}
}

// Event is a routing trigger. Implementations are the exported *Event types
// below; anything else is ignored by Reduce.
type Event interface {
	isRouterEvent()
}

// SessionRestored fires at startup when a valid session pointer references an
// existing user record.
type SessionRestored struct {
	Username string
	HasPhone bool
}

// LoginSucceeded fires after credentials validated (login or sign-up).
type LoginSucceeded struct {
	Username string
	HasPhone bool
}

// LoggedOut fires when the user logs out.
type LoggedOut struct{}

// LoginRequested fires when a logged-out user asks for the auth screen.
type LoginRequested struct{}

// PhoneAdded fires once a phone number has been stored.
type PhoneAdded struct{}

// CreateEventRequested fires when the user asks for the event-creation
// screen. HasPhone is the guard; without a verified phone it is a no-op.
type CreateEventRequested struct {
	HasPhone bool
}

// EventCreated fires after a new event has been persisted.
type EventCreated struct {
	EventID int64
}

// ViewEventRequested fires when any screen asks to open an event.
type ViewEventRequested struct {
	EventID int64
}

// EditEventRequested fires when the user asks to edit the selected event.
type EditEventRequested struct{}

// EventSaved fires after an edited event has been persisted.
type EventSaved struct{}

// BackFromViewEvent fires when the user leaves the event view.
type BackFromViewEvent struct{}

// NavigateRequested fires from the icon bar. Only dashboard, createEvent,
// explore and profile are legal targets.
type NavigateRequested struct {
	Target View
}

// ViewProfileRequested fires when the user opens another user's profile.
type ViewProfileRequested struct {
	Username string
}

// SearchChanged fires on every change of the global search term.
type SearchChanged struct {
	Term string
}

func (SessionRestored) isRouterEvent()      {}
func (LoginSucceeded) isRouterEvent()       {}
func (LoggedOut) isRouterEvent()            {}
func (LoginRequested) isRouterEvent()       {}
func (PhoneAdded) isRouterEvent()           {}
func (CreateEventRequested) isRouterEvent() {}
func (EventCreated) isRouterEvent()         {}
func (ViewEventRequested) isRouterEvent()   {}
func (EditEventRequested) isRouterEvent()   {}
func (EventSaved) isRouterEvent()           {}
func (BackFromViewEvent) isRouterEvent()    {}
func (NavigateRequested) isRouterEvent()    {}
func (ViewProfileRequested) isRouterEvent() {}
func (SearchChanged) isRouterEvent()        {}

// Reduce applies one event to the state and returns the next state. Guard
// failures return the state unchanged.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case SessionRestored:
		return postLogin(s, ev.Username, ev.HasPhone)

	case LoginSucceeded:
		return postLogin(s, ev.Username, ev.HasPhone)

	case LoggedOut:
		s.LoggedInUser = ""
		s.SelectedEventID = 0
		s.ViewingProfileUser = ""
		s.View = ViewExplore
		return s

	case LoginRequested:
		if s.LoggedInUser != "" {
			return s
		}
		s.ViewingProfileUser = ""
		s.View = ViewAuth
		return s

	case PhoneAdded:
		s.View = ViewDashboard
		return s

	case CreateEventRequested:
		if !ev.HasPhone {
			return s
		}
		s.View = ViewCreateEvent
		return s

	case EventCreated:
		s.SelectedEventID = ev.EventID
		s.View = ViewViewEvent
		return s

	case ViewEventRequested:
		s.SelectedEventID = ev.EventID
		s.ViewingProfileUser = ""
		s.View = ViewViewEvent
		return s

	case EditEventRequested:
		if s.SelectedEventID == 0 {
			return s
		}
		s.View = ViewEditEvent
		return s

	case EventSaved:
		s.SelectedEventID = 0
		s.ViewingProfileUser = ""
		s.View = ViewDashboard
		return s

	case BackFromViewEvent:
		s.SelectedEventID = 0
		s.ViewingProfileUser = ""
		if s.LoggedInUser != "" {
			s.View = ViewDashboard
		} else {
			s.View = ViewExplore
		}
		return s

	case NavigateRequested:
		switch ev.Target {
		case ViewDashboard, ViewCreateEvent, ViewExplore, ViewProfile:
		default:
			return s
		}
		s.SelectedEventID = 0
		s.ViewingProfileUser = ""
		s.View = ev.Target
		return s

	case ViewProfileRequested:
		s.ViewingProfileUser = ev.Username
		s.SelectedEventID = 0
		s.View = ViewPublicProfile
		return s

	case SearchChanged:
		s.SearchTerm = ev.Term
		return s
	}
	return s
}

func postLogin(s State, username string, hasPhone bool) State {
	s.LoggedInUser = username
	if hasPhone {
		s.View = ViewDashboard
	} else {
		s.View = ViewAddPhone
	}
	return s
}
