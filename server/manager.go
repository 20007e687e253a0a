package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"flagfall/agent"
	"flagfall/game"
)

var ErrNotFound = errors.New("game not found")

// Session is one live game: the authoritative board plus the opponent
// playing Red. The human always commands Blue.
type Session struct {
	ID        string
	Board     *game.Board
	Opponent  agent.Agent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager is the in-memory session store, keyed by uuid.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(board *game.Board, opponent agent.Agent) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		Board:     board,
		Opponent:  opponent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.UpdatedAt = time.Now()
	}
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}
