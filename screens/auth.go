package screens

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
)

const minPasswordLength = 6

// Auth handles sign-up, login and password reset against the Users
// collection. Passwords are stored and compared in plaintext.
type Auth struct {
	store *store.Store
}

// NewAuth creates the auth screen controller.
func NewAuth(s *store.Store) *Auth {
	return &Auth{store: s}
}

// SignUp creates a new account and returns the stored record. The new user
// starts without a phone number, so the post-login route is the addPhone view.
func (a *Auth) SignUp(ctx context.Context, username, password, confirm string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, validationf("Username is required")
	}
	if password == "" {
		return models.User{}, validationf("Password is required")
	}

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	if _, exists := users[username]; exists {
		return models.User{}, validationf("Username already exists. Please log in instead.")
	}
	if password != confirm {
		return models.User{}, validationf("Passwords do not match")
	}
	if len(password) < minPasswordLength {
		return models.User{}, validationf("Password must be at least 6 characters")
	}

	user := models.User{
		Username:    username,
		Password:    password,
		HasPhone:    false,
		PhoneNumber: "",
		DisplayName: username,
	}
	users[username] = user
	if err := a.store.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	log.Info("created new account", "username", username)
	return user, nil
}

// Login validates the credentials and returns the user record.
func (a *Auth) Login(ctx context.Context, username, password string) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, validationf("Username is required")
	}
	if password == "" {
		return models.User{}, validationf("Password is required")
	}

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, exists := users[username]
	if !exists {
		return models.User{}, validationf("Username not found. Please sign up instead.")
	}
	if user.Password != password {
		return models.User{}, validationf("Incorrect password")
	}
	return user, nil
}

// ResetPassword overwrites the stored password. Knowing the username is the
// only proof of identity required.
func (a *Auth) ResetPassword(ctx context.Context, username, newPassword, confirm string) error {
	if strings.TrimSpace(username) == "" {
		return validationf("Username is required")
	}
	if newPassword == "" {
		return validationf("New password is required")
	}
	if newPassword != confirm {
		return validationf("Passwords do not match")
	}
	if len(newPassword) < minPasswordLength {
		return validationf("Password must be at least 6 characters")
	}

	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return err
	}
	user, exists := users[username]
	if !exists {
		return validationf("Username not found")
	}
	user.Password = newPassword
	users[username] = user
	if err := a.store.SaveUsers(ctx, users); err != nil {
		return err
	}
	log.Warn("password reset without identity proof", "username", username)
	return nil
}

// Lookup returns the stored record for username.
func (a *Auth) Lookup(ctx context.Context, username string) (models.User, error) {
	users, err := a.store.LoadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, exists := users[username]
	if !exists {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
