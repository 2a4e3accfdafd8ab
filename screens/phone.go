package screens

import (
	"context"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/store"
)

// Digits with optional separators and country code, e.g. "555-123-4567" or
// "(555) 123-4567".
var phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

// Phone handles the add-phone screen: a verified phone number gates event
// creation.
type Phone struct {
	store *store.Store
}

// NewPhone creates the add-phone screen controller.
func NewPhone(s *store.Store) *Phone {
	return &Phone{store: s}
}

// Add validates the phone number format and stores it on the user record,
// flipping hasPhone to true.
func (p *Phone) Add(ctx context.Context, username, phone string) error {
	if phone == "" {
		return validationf("Phone number is required.")
	}
	if !phonePattern.MatchString(phone) {
		return validationf("Please enter a valid phone number format.")
	}

	users, err := p.store.LoadUsers(ctx)
	if err != nil {
		return err
	}
	user, exists := users[username]
	if !exists {
		return ErrNotFound
	}
	user.HasPhone = true
	user.PhoneNumber = phone
	users[username] = user
	if err := p.store.SaveUsers(ctx, users); err != nil {
		return err
	}
	log.Info("phone number added", "username", username)
	return nil
}
