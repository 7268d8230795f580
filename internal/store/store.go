// Package store persists the per-account save document and delivers live
// updates to subscribers.
//
// Writes have merge-patch semantics: each save method touches only its own
// field of the document and leaves the others alone. Every change is
// broadcast as the full document to all subscribers of the account.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the decoded save document of one account. A nil Career means
// the account has not created one yet (or deleted it).
type Document struct {
	Career   *career.Career `json:"career"`
	Avatar   *string        `json:"avatar"`
	Nickname string         `json:"nickname"`
}

// Store reads and writes documents and manages subscriptions.
type Store struct {
	mu        sync.Mutex
	nextID    int
	listeners map[uuid.UUID]map[int]chan Document
}

func New() *Store {
	return &Store{
		listeners: make(map[uuid.UUID]map[int]chan Document),
	}
}

// Get returns the document for an account. An account without any saved
// data gets the zero document, not an error.
func (s *Store) Get(accountID uuid.UUID) (Document, error) {
	var row models.Document
	err := models.DB.First(&row, "account_id = ?", accountID).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, err
	}

	return decode(row)
}

// SaveCareer stores a new career value, or removes the career when c is
// nil. The avatar and nickname fields are untouched.
func (s *Store) SaveCareer(accountID uuid.UUID, c *career.Career) error {
	var blob []byte
	if c != nil {
		var err error
		blob, err = json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encoding career: %w", err)
		}
	}

	return s.save(accountID, models.Document{AccountID: accountID, Career: blob}, "career")
}

// SaveAvatar stores a new avatar data string, or removes it when nil.
func (s *Store) SaveAvatar(accountID uuid.UUID, avatar *string) error {
	return s.save(accountID, models.Document{AccountID: accountID, Avatar: avatar}, "avatar")
}

// SaveNickname stores a new nickname.
func (s *Store) SaveNickname(accountID uuid.UUID, nickname string) error {
	return s.save(accountID, models.Document{AccountID: accountID, Nickname: nickname}, "nickname")
}

// save upserts the document row, updating only the given column, then
// broadcasts the new document state.
func (s *Store) save(accountID uuid.UUID, row models.Document, column string) error {
	err := models.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{column, "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}

	s.broadcast(accountID)
	return nil
}

// Subscribe delivers the full document on every change of the account's
// data. The returned cancel func must be called to release the
// subscription. Slow receivers miss intermediate states instead of
// blocking writers, the latest state always arrives.
func (s *Store) Subscribe(accountID uuid.UUID) (<-chan Document, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	ch := make(chan Document, 1)
	if s.listeners[accountID] == nil {
		s.listeners[accountID] = make(map[int]chan Document)
	}
	s.listeners[accountID][id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		l, ok := s.listeners[accountID]
		if !ok {
			return
		}

		if _, ok := l[id]; !ok {
			return
		}

		delete(l, id)
		if len(l) == 0 {
			delete(s.listeners, accountID)
		}

		// Broadcasts also hold the mutex, closing here cannot race a send
		close(ch)
	}

	return ch, cancel
}

func (s *Store) broadcast(accountID uuid.UUID) {
	doc, err := s.Get(accountID)
	if err != nil {
		log.Error().Err(err).Str("account", accountID.String()).Msg("reading document for broadcast")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.listeners[accountID] {
		// Replace a pending state with the newer one
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- doc:
		default:
		}
	}
}

func decode(row models.Document) (Document, error) {
	doc := Document{
		Avatar:   row.Avatar,
		Nickname: row.Nickname,
	}

	if len(row.Career) > 0 {
		var c career.Career
		if err := json.Unmarshal(row.Career, &c); err != nil {
			return Document{}, fmt.Errorf("decoding career: %w", err)
		}
		doc.Career = &c
	}

	return doc, nil
}
