// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/flappigotchi-server/models"
)

var ErrDuplicateSession = errors.New("session already exists")

// Session is the server-side state of one live connection
type Session struct {
	ID        string
	Gotchi    *models.Gotchi // nil until setGotchiData
	StartedAt *time.Time     // nil until gameStarted
}

// Registry maps connection IDs to sessions.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// NewID returns a random connection ID
func NewID() string {
	return uuid.NewString()
}

// Connect creates an empty session for id
func (r *Registry) Connect(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return Session{}, ErrDuplicateSession
	}

	s := &Session{ID: id}
	r.sessions[id] = s
	return *s, nil
}

// SetIdentity attaches the player's gotchi to the session.
// Returns false if the session is gone.
func (r *Registry) SetIdentity(id string, gotchi models.Gotchi) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.Gotchi = &gotchi
	return true
}

// SetStart records (or resets) the game start time.
// Returns false if the session is gone.
func (r *Registry) SetStart(id string, startedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.StartedAt = &startedAt
	return true
}

// Get returns a copy of the session for id
func (r *Registry) Get(id string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, false
	}

	out := Session{ID: s.ID}
	if s.Gotchi != nil {
		g := *s.Gotchi
		out.Gotchi = &g
	}
	if s.StartedAt != nil {
		t := *s.StartedAt
		out.StartedAt = &t
	}
	return out, true
}

// Remove deletes the session. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
