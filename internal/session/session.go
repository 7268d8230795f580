// Package session holds the in-memory save state of signed-in accounts
// and keeps it in sync with the document store.
//
// Mutations are optimistic: the in-memory state is replaced synchronously
// and the store write happens in the background. A failed write is logged
// and counted but never rolled back, the local state stays authoritative
// for the session. Remote changes arriving through the subscription fully
// replace the local state, last writer wins.
package session

import (
	"sync"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/store"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var persistFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "document_persist_failures_total",
	Help: "How many background document writes failed.",
})

// Session is the live state of one signed-in account.
type Session struct {
	accountID uuid.UUID
	store     *store.Store

	mu       sync.Mutex
	career   *career.Career
	avatar   *string
	nickname string

	cancel func()
	wg     sync.WaitGroup
}

// Manager tracks at most one session per account.
type Manager struct {
	mu       sync.Mutex
	store    *store.Store
	sessions map[uuid.UUID]*Session
}

func NewManager(st *store.Store) *Manager {
	return &Manager{
		store:    st,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Start loads the account's document and begins mirroring remote changes.
// Starting an account that already has a session returns the existing one.
func (m *Manager) Start(accountID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[accountID]; ok {
		return s, nil
	}

	doc, err := m.store.Get(accountID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		accountID: accountID,
		store:     m.store,
		career:    doc.Career,
		avatar:    doc.Avatar,
		nickname:  doc.Nickname,
	}

	updates, cancel := m.store.Subscribe(accountID)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for doc := range updates {
			s.applyRemote(doc)
		}
	}()

	m.sessions[accountID] = s
	return s, nil
}

// Get returns the running session for an account.
func (m *Manager) Get(accountID uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[accountID]
	return s, ok
}

// End tears down the session on sign-out: the subscription is cancelled
// and the local state is dropped. The stored document is untouched.
func (m *Manager) End(accountID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[accountID]
	delete(m.sessions, accountID)
	m.mu.Unlock()

	if !ok {
		return
	}

	s.cancel()
	s.wg.Wait()

	s.mu.Lock()
	s.career = nil
	s.avatar = nil
	s.nickname = ""
	s.mu.Unlock()
}

// applyRemote replaces the local state with a remote snapshot. This can
// revert an optimistic change when the echo arrives out of order, which is
// the accepted resolution.
func (s *Session) applyRemote(doc store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.career = doc.Career
	s.avatar = doc.Avatar
	s.nickname = doc.Nickname
}

// Career returns a copy of the current career, or nil before one was
// created.
func (s *Session) Career() *career.Career {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.career == nil {
		return nil
	}

	c := *s.career
	return &c
}

// Avatar returns the current avatar data string.
func (s *Session) Avatar() *string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.avatar
}

// Nickname returns the current nickname.
func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nickname
}

// Replace swaps in the next career value (nil deletes the career) and
// persists it in the background.
func (s *Session) Replace(c *career.Career) {
	s.mu.Lock()
	s.career = c
	s.mu.Unlock()

	go func() {
		if err := s.store.SaveCareer(s.accountID, c); err != nil {
			persistFailures.Inc()
			log.Error().Err(err).Str("account", s.accountID.String()).Msg("persisting career")
		}
	}()
}

// SetAvatar swaps the avatar (nil deletes it) and persists it in the
// background.
func (s *Session) SetAvatar(avatar *string) {
	s.mu.Lock()
	s.avatar = avatar
	s.mu.Unlock()

	go func() {
		if err := s.store.SaveAvatar(s.accountID, avatar); err != nil {
			persistFailures.Inc()
			log.Error().Err(err).Str("account", s.accountID.String()).Msg("persisting avatar")
		}
	}()
}

// SetNickname swaps the nickname and persists it in the background.
func (s *Session) SetNickname(nickname string) {
	s.mu.Lock()
	s.nickname = nickname
	s.mu.Unlock()

	go func() {
		if err := s.store.SaveNickname(s.accountID, nickname); err != nil {
			persistFailures.Inc()
			log.Error().Err(err).Str("account", s.accountID.String()).Msg("persisting nickname")
		}
	}()
}
