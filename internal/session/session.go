package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"faersview/internal/locate"
	"faersview/internal/table"
)

var ErrNoTable = errors.New("no table loaded")

// Session is the working context of one user: the loaded table and the most
// recent search. A Session is safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	table    *table.Table
	last     *locate.Result
	lastSeen time.Time
}

// Table returns the loaded table, or nil.
func (s *Session) Table() *table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// LastResult returns the most recent successful search.
func (s *Session) LastResult() (locate.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return locate.Result{}, false
	}
	return *s.last, true
}

// Load replaces the current table with the result of load. On error the
// current table and search are kept.
func (s *Session) Load(load func() (*table.Table, error)) (*table.Table, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNoTable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
	s.last = nil
	return t, nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.last = nil
}

// Search locates a case in the loaded table and records it as the last result.
// A miss leaves the previous result in place.
func (s *Session) Search(key string, keyField locate.KeyField, filters locate.Filters) (locate.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return locate.Result{}, ErrNoTable
	}
	res, err := locate.Find(s.table, key, keyField, filters)
	if err != nil {
		return locate.Result{}, err
	}
	s.last = &res
	return res, nil
}

// Store holds sessions by ID. Idle sessions are dropped when new ones are created.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	maxIdle  time.Duration
	now      func() time.Time
}

func NewStore(maxIdle time.Duration) *Store {
	return &Store{
		sessions: map[string]*Session{},
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

// Get returns the session for id, creating a new one when id is unknown. The
// second result reports whether a session was created.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	if s, ok := st.sessions[id]; ok && id != "" {
		s.lastSeen = now
		return s, false
	}
	st.prune(now)
	s := &Session{ID: uuid.NewString(), lastSeen: now}
	st.sessions[s.ID] = s
	return s, true
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) prune(now time.Time) {
	if st.maxIdle <= 0 {
		return
	}
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.maxIdle {
			delete(st.sessions, id)
		}
	}
}
