package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session holds the credential for one browser. The credential only ever
// lives in process memory.
type Session struct {
	ID string

	mu         sync.RWMutex
	credential string
	configured bool
	lastSeen   time.Time
}

// SetCredential stores the credential and marks the session configured.
// An empty value is rejected and leaves the session untouched.
func (s *Session) SetCredential(value string) error {
	if value == "" {
		return &ValidationError{Field: "credential", Message: "Please enter a valid API Key"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = value
	s.configured = true
	return nil
}

func (s *Session) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}

func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen)
}

// SessionStore keeps sessions in memory, keyed by a random ID
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

// NewSessionStore creates a store that forgets sessions idle for longer than
// idleTimeout. A zero timeout keeps sessions until the process exits.
func NewSessionStore(idleTimeout time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Get returns the live session for id and refreshes its idle clock
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.expired(sess, now) {
		delete(st.sessions, id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a new unconfigured session
func (st *SessionStore) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	st.maybeSweepLocked(now)

	sess := &Session{ID: uuid.NewString(), lastSeen: now}
	st.sessions[sess.ID] = sess
	return sess
}

// Len reports how many sessions are currently held
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) expired(sess *Session, now time.Time) bool {
	return st.idleTimeout > 0 && sess.idleSince(now) > st.idleTimeout
}

// maybeSweepLocked drops idle sessions at most once per idle timeout, so
// creating sessions stays cheap. Get still rejects expired sessions between sweeps.
func (st *SessionStore) maybeSweepLocked(now time.Time) {
	if st.idleTimeout <= 0 {
		return
	}
	if st.lastSweep.IsZero() {
		st.lastSweep = now
		return
	}
	if now.Sub(st.lastSweep) < st.idleTimeout {
		return
	}
	st.lastSweep = now
	for id, sess := range st.sessions {
		if st.expired(sess, now) {
			delete(st.sessions, id)
		}
	}
}
