package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forPelevin/stampcut/internal/types"
	"github.com/forPelevin/stampcut/internal/workspace"
)

var errSessionNotFound = errors.New("session not found")

// Session is one uploaded video with its detected window. Each session
// owns a private workspace, so sessions never share working files. The
// per-session mutex serializes extraction against the shared clip artifact.
type Session struct {
	ID        string
	WS        *workspace.Workspace
	Detection types.Detection
	CreatedAt time.Time

	mu      sync.Mutex
	hasClip bool
}

// Lock serializes operations that touch the session's working files.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) setClip()        { s.hasClip = true }
func (s *Session) clipReady() bool { return s.hasClip }

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

func (st *sessionStore) create(ws *workspace.Workspace, det types.Detection) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		WS:        ws,
		Detection: det,
		CreatedAt: time.Now().UTC(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *sessionStore) get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}

// remove drops the session and its working files.
func (st *sessionStore) remove(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return errSessionNotFound
	}
	return s.WS.Cleanup()
}
