package core

// session.go holds validation sessions: the server-side state for one
// uploaded file between validation, row correction, and commit.
//
// A session owns the batch results and the index clone the pass mutated, so
// correction-loop re-checks see exactly the duplicate state the original
// pass built up. Sessions are never shared between passes; two files being
// validated at once always get independent index clones.
//
// Sessions expire after a TTL so abandoned uploads do not accumulate.
// Expired entries are swept opportunistically on the next store access.

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which import layout a session validates against.
type Kind string

const (
	KindItems Kind = "items"
	KindBoms  Kind = "boms"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("validation session not found")

// DefaultSessionTTL is how long an idle session is kept before expiry.
const DefaultSessionTTL = 30 * time.Minute

// Session is the state of one validated upload.
type Session struct {
	ID        string
	Kind      Kind
	FileName  string
	Results   []RowResult
	Index     *Index
	CreatedAt time.Time
	touchedAt time.Time
}

// SessionStore keeps active validation sessions in memory.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store with the given TTL (zero means default).
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create validates the rows of one uploaded file against its own clone of
// the catalog index and stores the result as a new session.
func (s *SessionStore) Create(kind Kind, fileName string, rows []RawRow, skipHeader bool, catalog *Index) *Session {
	ix := catalog.Clone()

	var results []RowResult
	switch kind {
	case KindBoms:
		results = ValidateBoMs(rows, skipHeader, ix)
	default:
		results = ValidateItems(rows, skipHeader, ix)
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		FileName:  fileName,
		Results:   results,
		Index:     ix,
		CreatedAt: now,
		touchedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(now)
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns a live session by ID.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	sess.touchedAt = s.now()
	return sess, nil
}

// Revalidate re-runs the row validator for one edited row of a session and
// replaces that row's verdict in place.
func (s *SessionStore) Revalidate(id string, index int, row RawRow) (RowResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, s.now()) {
		delete(s.sessions, id)
		return RowResult{}, ErrSessionNotFound
	}
	sess.touchedAt = s.now()

	var (
		result RowResult
		valid  bool
	)
	switch sess.Kind {
	case KindBoms:
		result, valid = RevalidateBomRow(sess.Results, index, row, sess.Index)
	default:
		result, valid = RevalidateItemRow(sess.Results, index, row, sess.Index)
	}
	if !valid {
		return RowResult{}, errors.New("row index out of range")
	}
	return result, nil
}

// Delete removes a session, typically after a successful commit.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.touchedAt) > s.ttl
}

// sweepLocked drops expired sessions. Caller holds the lock.
func (s *SessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}
