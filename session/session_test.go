package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get()
	assert.False(t, ok)

	m.Set("alice")
	username, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	m.Clear()
	_, ok = m.Get()
	assert.False(t, ok)
}
