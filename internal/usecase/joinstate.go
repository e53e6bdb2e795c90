package usecase

import (
	"sync"

	"github.com/gameon-app/gameon-go/internal/domain/browse"
)

// JoinState is the client-side copy of the viewer's participations. The server
// owns the truth; this copy is replaced wholesale after every refresh and
// every membership-changing action, never patched optimistically.
type JoinState struct {
	mu     sync.RWMutex
	joined browse.JoinedSet
	loaded bool
}

func NewJoinState() *JoinState {
	return &JoinState{joined: browse.NewJoinedSet(nil)}
}

// Replace swaps in a fresh snapshot of joined request ids.
func (s *JoinState) Replace(ids []int64) {
	next := browse.NewJoinedSet(ids)
	s.mu.Lock()
	s.joined = next
	s.loaded = true
	s.mu.Unlock()
}

// Snapshot returns the current joined set. Callers must not mutate it; the
// next Replace installs a new map rather than touching this one.
func (s *JoinState) Snapshot() browse.JoinedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joined
}

func (s *JoinState) Has(requestID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joined.Has(requestID)
}

// Loaded reports whether at least one refresh has completed. Before that the
// joined view renders empty rather than guessing.
func (s *JoinState) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
