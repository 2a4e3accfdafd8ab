package models

// Background selects the decorative animation rendered behind an event.
type Background string

const (
	BackgroundParticles Background = "particles"
	BackgroundLines     Background = "lines"
)

// Valid reports whether b is one of the known background patterns.
func (b Background) Valid() bool {
	return b == BackgroundParticles || b == BackgroundLines
}

// User is a registered account, keyed by its case-sensitive username.
// Password is stored in plaintext; accounts created before the password
// field existed may lack one until the startup migration patches them.
type User struct {
	Username        string `json:"username"`
	Password        string `json:"password,omitempty"`
	HasPhone        bool   `json:"hasPhone"`
	PhoneNumber     string `json:"phoneNumber"`
	DisplayName     string `json:"displayName,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// Event is a user-created event. ID is a unix-millisecond timestamp taken
// at creation time and never changes afterwards.
type Event struct {
	ID              int64      `json:"id"`
	UserID          string     `json:"userId"`
	CreatorUsername string     `json:"creatorUsername,omitempty"`
	Title           string     `json:"title"`
	Date            string     `json:"date"`
	Description     string     `json:"description"`
	Background      Background `json:"background"`
	IsPublic        bool       `json:"isPublic"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	CreatedAt       string     `json:"createdAt,omitempty"`
	RSVPs           []string   `json:"rsvps,omitempty"`
}

// Creator returns the owning username, preferring the denormalized
// creatorUsername field over userId for older records.
func (e *Event) Creator() string {
	if e.CreatorUsername != "" {
		return e.CreatorUsername
	}
	return e.UserID
}

// HasRSVP reports whether username already appears in the RSVP list.
func (e *Event) HasRSVP(username string) bool {
	for _, u := range e.RSVPs {
		if u == username {
			return true
		}
	}
	return false
}

// PublicProfile is the projection of a User that other users may see.
type PublicProfile struct {
	Username        string `json:"username"`
	DisplayName     string `json:"displayName,omitempty"`
	Bio             string `json:"bio,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}
