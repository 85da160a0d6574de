package state

import (
	"sync"

	"opscore/internal/core/clone"
)

// Store guards the live Snapshot behind a single mutual-exclusion boundary.
// One repository operation equals one critical section: a ledger operation's
// lot adjustments plus its journal append are atomic with respect to any
// other operation, and readers never observe a partially applied move.
type Store struct {
	mu    sync.Mutex
	seed  Snapshot
	state Snapshot
}

// New creates a store initialized from the default seed snapshot.
func New() *Store {
	return NewWithSeed(Seed())
}

// NewWithSeed creates a store with a caller-provided seed. The seed is
// deep-copied on the way in and again into the live state, so the caller's
// value stays independent.
func NewWithSeed(seed Snapshot) *Store {
	frozen := clone.Of(seed)
	return &Store{
		seed:  frozen,
		state: clone.Of(frozen),
	}
}

// View runs fn with read access to the live snapshot. fn must not retain
// references past its return; copy anything that leaves.
func (s *Store) View(fn func(snap *Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Update runs fn with write access to the live snapshot. The returned error
// is passed through untouched. Mutations made before a failure are
// committed; there is no rollback path.
func (s *Store) Update(fn func(snap *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// Reset replaces every sub-state with a fresh deep copy of the seed,
// discarding all run-time mutations. Previously issued copies remain valid
// values but no longer reflect store state. Cannot fail.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = clone.Of(s.seed)
}
