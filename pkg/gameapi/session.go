package gameapi

import (
	"sync"

	"github.com/wordgrid/wordgrid-web/internal/models"
)

// SessionStore owns the two values a signed-in session persists: the bearer
// credential and the cached user summary. Higher-level calls go through this
// interface rather than touching storage directly so the backing can be
// swapped per host platform (memory here, browser storage or a secure store
// elsewhere). Writes are single-writer-last-wins; no transactional guarantee.
type SessionStore interface {
	Token() (string, bool)
	SetToken(tok string)
	ClearToken()

	User() (models.UserSummary, bool)
	SetUser(u models.UserSummary)
	ClearUser()
}

// MemoryStore is the in-process SessionStore used by the server-side client
// and by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  models.UserSummary
	hasU  bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) SetToken(tok string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = tok
}

func (m *MemoryStore) ClearToken() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

func (m *MemoryStore) User() (models.UserSummary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.hasU
}

func (m *MemoryStore) SetUser(u models.UserSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	m.hasU = true
}

func (m *MemoryStore) ClearUser() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = models.UserSummary{}
	m.hasU = false
}
