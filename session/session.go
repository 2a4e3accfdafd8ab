// Package session holds the volatile session pointer: the username of the
// currently logged-in user, absent when logged out. The API layer backs it
// with a browser cookie session; tests use the in-memory implementation.
package session

// Store is the session pointer contract.
type Store interface {
	Get() (username string, ok bool)
	Set(username string)
	Clear()
}

// Memory is an in-process session store.
type Memory struct {
	username string
}

// NewMemory creates an empty (logged out) session store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	return m.username, m.username != ""
}

func (m *Memory) Set(username string) {
	m.username = username
}

func (m *Memory) Clear() {
	m.username = ""
}
