package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// IdleTimeout is how long a session may sit without activity before it
	// is treated as abandoned.
	IdleTimeout = 30 * time.Minute

	// SweepInterval is the cadence of the background eviction pass.
	SweepInterval = 5 * time.Minute
)

// entry pairs a session with its per-conversation lock. Turns on the same
// conversation serialize on entry.mu; turns on different conversations
// only contend for the brief registry lookups.
type entry struct {
	mu sync.Mutex
	s  *Session
}

// Store is the keyed registry of live sessions. Expiry is enforced lazily
// on every lookup and proactively by SweepExpired.
//
// The registry lock guards only the map; session fields (including the
// idle clock read by ExpiredAt) are guarded by the entry lock, so every
// read of a session goes through its entry lock.
//
// Lock ordering: a per-entry lock is never acquired while holding the
// registry lock, and the registry lock is always the innermost of the two.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTimeout overrides the idle timeout.
func WithTimeout(d time.Duration) Option {
	return func(st *Store) { st.timeout = d }
}

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// NewStore returns an empty registry with the standard idle timeout.
func NewStore(opts ...Option) *Store {
	st := &Store{
		entries: make(map[string]*entry),
		timeout: IdleTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Create registers a fresh session for the conversation, replacing any
// existing one, and returns a snapshot of it.
func (st *Store) Create(conversationID, owner string) Session {
	now := st.now()
	s := &Session{
		ConversationID: conversationID,
		Owner:          owner,
		CreatedAt:      now,
		LastActivity:   now,
		State:          StateAwaitingChoice,
	}
	// Snapshot before publication; once the entry is registered other
	// goroutines may reach the session through its entry lock.
	snapshot := *s
	st.mu.Lock()
	st.entries[conversationID] = &entry{s: s}
	st.mu.Unlock()
	return snapshot
}

// Get returns a snapshot of the session, enforcing expiry: an idle session
// is deleted on lookup and reported as absent.
func (st *Store) Get(conversationID string) (Session, bool) {
	st.mu.Lock()
	e, ok := st.entries[conversationID]
	st.mu.Unlock()
	if !ok {
		return Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !st.live(conversationID, e) {
		return Session{}, false
	}
	if e.s.ExpiredAt(st.now(), st.timeout) {
		st.evict(conversationID, e)
		return Session{}, false
	}
	return *e.s, true
}

// Update borrows the session for one turn, running fn under the
// conversation's lock with the current time. Returns false when the
// session is absent or expired; fn does not run in that case.
func (st *Store) Update(conversationID string, fn func(s *Session, now time.Time)) bool {
	st.mu.Lock()
	e, ok := st.entries[conversationID]
	st.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The entry may have been removed or replaced while we waited for its
	// lock; a stale entry must not be mutated.
	if !st.live(conversationID, e) {
		return false
	}
	if e.s.ExpiredAt(st.now(), st.timeout) {
		st.evict(conversationID, e)
		return false
	}

	fn(e.s, st.now())
	return true
}

// live reports whether e is still the registered entry for the id. Caller
// holds e.mu.
func (st *Store) live(conversationID string, e *entry) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	cur, ok := st.entries[conversationID]
	return ok && cur == e
}

// evict removes e if it is still the registered entry. Caller holds e.mu.
func (st *Store) evict(conversationID string, e *entry) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cur, ok := st.entries[conversationID]; ok && cur == e {
		delete(st.entries, conversationID)
	}
}

// Remove deletes the session, if present.
func (st *Store) Remove(conversationID string) {
	st.mu.Lock()
	delete(st.entries, conversationID)
	st.mu.Unlock()
}

// Len reports the number of live entries, expired or not.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// SweepExpired deletes every session idle past the timeout and returns how
// many were evicted. The idle clock is only read under the entry lock, so
// a session mid-turn makes the sweep wait for the turn to finish; the
// turn's Touch then keeps it alive.
func (st *Store) SweepExpired() int {
	type candidate struct {
		id string
		e  *entry
	}

	st.mu.Lock()
	candidates := make([]candidate, 0, len(st.entries))
	for id, e := range st.entries {
		candidates = append(candidates, candidate{id: id, e: e})
	}
	st.mu.Unlock()

	removed := 0
	for _, c := range candidates {
		c.e.mu.Lock()
		if st.live(c.id, c.e) && c.e.s.ExpiredAt(st.now(), st.timeout) {
			st.evict(c.id, c.e)
			removed++
		}
		c.e.mu.Unlock()
	}
	return removed
}

// Run sweeps expired sessions on a fixed interval until ctx is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.SweepExpired(); n > 0 {
				log.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
