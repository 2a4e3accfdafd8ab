package api

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/deffiedeff2/event-app/router"
	"github.com/deffiedeff2/event-app/session"
)

var _ session.Store = (*cookieSession)(nil)

const (
	sessionUserKey  = "eventAppSessionUser"
	sessionStateKey = "routerState"
)

// cookieSession backs the session pointer contract with the browser cookie
// session, and additionally carries the per-session routing state.
type cookieSession struct {
	s sessions.Session
}

func currentSession(c *gin.Context) *cookieSession {
	return &cookieSession{s: sessions.Default(c)}
}

// Get returns the session username, false when logged out.
func (cs *cookieSession) Get() (string, bool) {
	username, ok := cs.s.Get(sessionUserKey).(string)
	return username, ok && username != ""
}

// Set records the session username.
func (cs *cookieSession) Set(username string) {
	cs.s.Set(sessionUserKey, username)
}

// Clear removes the session username and routing state.
func (cs *cookieSession) Clear() {
	cs.s.Delete(sessionUserKey)
	cs.s.Delete(sessionStateKey)
}

// State returns the session's routing state, or the initial state when none
// has been stored yet.
func (cs *cookieSession) State() router.State {
	raw, ok := cs.s.Get(sessionStateKey).(string)
	if !ok {
		return router.NewState()
	}
	var st router.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return router.NewState()
	}
	return st
}

// SetState stores the routing state in the session.
func (cs *cookieSession) SetState(st router.State) {
	data, err := json.Marshal(st)
	if err != nil {
		return
	}
	cs.s.Set(sessionStateKey, string(data))
}

// Save flushes the session cookie.
func (cs *cookieSession) Save() error {
	return cs.s.Save()
}
