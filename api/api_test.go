package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deffiedeff2/event-app/config"
	"github.com/deffiedeff2/event-app/engine"
	"github.com/deffiedeff2/event-app/models"
	"github.com/deffiedeff2/event-app/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Listen:                "127.0.0.1:0",
		DataDir:               t.TempDir(),
		SessionKey:            "test-session-key",
		ExploreRefreshSeconds: 30,
		Cache:                 &config.CacheConfig{Type: "memory"},
	}
	s := store.New(store.NewMemoryKV())

	eng, err := engine.New(cfg, s)
	require.NoError(t, err)
	t.Cleanup(func() { _ = eng.Close() })

	srv, err := New(cfg, s, eng)
	require.NoError(t, err)
	srv.setupRoutes()
	return srv, s
}

// testClient carries the session cookie between requests.
type testClient struct {
	t       *testing.T
	srv     *Server
	cookies []*http.Cookie
}

func (c *testClient) request(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.srv.ginEngine.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *testClient) postJSON(path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	data, err := json.Marshal(body)
	require.NoError(c.t, err)
	return c.request(http.MethodPost, path, "application/json", bytes.NewReader(data))
}

func (c *testClient) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.request(http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.request(http.MethodGet, path, "", nil)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func stateView(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	state, ok := body["state"].(map[string]any)
	require.True(t, ok, "response has no state: %s", w.Body.String())
	view, _ := state["view"].(string)
	return view
}

func TestSignupPhoneCreateEventFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	client := &testClient{t: t, srv: srv}

	// Sign up routes to the addPhone view.
	w := client.postJSON("/api/auth/signup", map[string]string{
		"username":        "alice",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "addPhone", stateView(t, w))

	// The state survives across requests via the session cookie.
	w = client.get("/api/state")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "addPhone", stateView(t, w))

	// Creating events is refused until a phone number is on file.
	w = client.postForm("/api/events", url.Values{
		"title":       {"Picnic"},
		"date":        {"2025-07-01"},
		"description": {"Bring snacks"},
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	// Adding the phone advances to the dashboard.
	w = client.postJSON("/api/phone", map[string]string{"phone": "555-123-4567"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "dashboard", stateView(t, w))

	// Now the event can be created; it routes to the event view.
	w = client.postForm("/api/events", url.Values{
		"title":       {"Picnic"},
		"date":        {"2025-07-01"},
		"description": {"Bring snacks"},
		"isPublic":    {"true"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "viewEvent", stateView(t, w))

	// And shows up on the dashboard.
	w = client.get("/api/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	assert.Len(t, events, 1)
}

func TestProtectedRoutesRequireLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	client := &testClient{t: t, srv: srv}

	w := client.get("/api/dashboard")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = client.postJSON("/api/phone", map[string]string{"phone": "555-123-4567"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupValidationErrorsPassThrough(t *testing.T) {
	srv, _ := newTestServer(t)
	client := &testClient{t: t, srv: srv}

	w := client.postJSON("/api/auth/signup", map[string]string{
		"username":        "alice",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Fresh client, same username.
	other := &testClient{t: t, srv: srv}
	w = other.postJSON("/api/auth/signup", map[string]string{
		"username":        "alice",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Username already exists. Please log in instead.", body["error"])
}

func TestLoginAndLogout(t *testing.T) {
	srv, s := newTestServer(t)
	seedTestUser(t, s, models.User{Username: "alice", Password: "secret1", HasPhone: true})
	client := &testClient{t: t, srv: srv}

	w := client.postJSON("/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "dashboard", stateView(t, w))

	w = client.postJSON("/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "explore", stateView(t, w))

	w = client.get("/api/dashboard")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExploreListsPublicEventsOnly(t *testing.T) {
	srv, s := newTestServer(t)
	seedTestUser(t, s, models.User{Username: "alice", DisplayName: "Alice B"})
	require.NoError(t, s.SaveEvents(context.Background(), []models.Event{
		{ID: 1, UserID: "alice", CreatorUsername: "alice", Title: "Picnic", IsPublic: true, CreatedAt: "2025-06-14T12:00:00Z"},
		{ID: 2, UserID: "alice", CreatorUsername: "alice", Title: "Secret", IsPublic: false},
	}))
	client := &testClient{t: t, srv: srv}

	w := client.get("/api/explore")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 1)

	event := events[0].(map[string]any)
	assert.Equal(t, "Picnic", event["title"])
	assert.Equal(t, "Alice B", event["creatorDisplayName"])
	assert.NotEmpty(t, event["createdAgo"])
}

func TestDeleteEventRequiresConfirmation(t *testing.T) {
	srv, s := newTestServer(t)
	seedTestUser(t, s, models.User{Username: "alice", Password: "secret1", HasPhone: true})
	require.NoError(t, s.SaveEvents(context.Background(), []models.Event{
		{ID: 1, UserID: "alice", Title: "Picnic", Date: "2025-07-01", Description: "x"},
	}))
	client := &testClient{t: t, srv: srv}

	w := client.postJSON("/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = client.request(http.MethodDelete, "/api/events/1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = client.request(http.MethodDelete, "/api/events/1?confirm=true", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	events, err := s.LoadEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPublicProfile(t *testing.T) {
	srv, s := newTestServer(t)
	seedTestUser(t, s, models.User{Username: "alice", Password: "secret1", DisplayName: "Alice B", PhoneNumber: "555-123-4567"})
	client := &testClient{t: t, srv: srv}

	w := client.get("/api/users/alice")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	profile, ok := body["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alice B", profile["displayName"])

	// The password and phone number are never exposed.
	raw := w.Body.String()
	assert.NotContains(t, raw, "secret1")
	assert.NotContains(t, raw, "555-123-4567")

	w = client.get("/api/users/nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedTestUser(t *testing.T, s *store.Store, user models.User) {
	t.Helper()
	ctx := context.Background()
	users, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	users[user.Username] = user
	require.NoError(t, s.SaveUsers(ctx, users))
}
