package tui

import (
	"sort"
	"sync"
)

// ActiveSessions tracks the SSH sessions currently connected.
// Thread-safe for concurrent access.
type ActiveSessions struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewActiveSessions creates an empty tracker.
func NewActiveSessions() *ActiveSessions {
	return &ActiveSessions{
		sessions: make(map[string]Session),
	}
}

// Add registers a session and returns the new count.
func (a *ActiveSessions) Add(s Session) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions[s.ID] = s
	return len(a.sessions)
}

// Remove drops a session and returns the new count.
func (a *ActiveSessions) Remove(id string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, id)
	return len(a.sessions)
}

// Count returns the number of connected sessions.
func (a *ActiveSessions) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.sessions)
}

// List returns the connected sessions ordered by player, then ID.
func (a *ActiveSessions) List() []Session {
	a.mu.RLock()
	defer a.mu.RUnlock()

	result := make([]Session, 0, len(a.sessions))
	for _, s := range a.sessions {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Player != result[j].Player {
			return result[i].Player < result[j].Player
		}
		return result[i].ID < result[j].ID
	})

	return result
}
