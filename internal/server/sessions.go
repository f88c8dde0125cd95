package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pdrpinto/gridastar"
)

var ErrSessionNotFound = errors.New("session not found")

// session owns one Stepper. Steps on the same session are serialised.
type session struct {
	mu          sync.Mutex
	stepper     *gridastar.Stepper
	grid        *gridastar.Grid
	source      gridastar.Coordinate
	destination gridastar.Coordinate
	createdAt   time.Time
}

// sessionStore keeps at most limit sessions, evicting the oldest.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	limit    int
}

func newSessionStore(limit int) *sessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*session), limit: limit}
}

// add stores s and returns its ID and the ID evicted to make room, if any.
func (st *sessionStore) add(s *session) (uuid.UUID, uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var evicted uuid.UUID
	if len(st.sessions) >= st.limit {
		var oldest time.Time
		for id, existing := range st.sessions {
			if evicted == uuid.Nil || existing.createdAt.Before(oldest) {
				evicted, oldest = id, existing.createdAt
			}
		}
		delete(st.sessions, evicted)
	}
	id := uuid.New()
	st.sessions[id] = s
	return id, evicted
}

func (st *sessionStore) get(id uuid.UUID) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *sessionStore) remove(id uuid.UUID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *sessionStore) len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
