// Package store provides storage backends for captured leads and
// conversation logs.
//
// It includes an in-memory store for tests and development, plus SQLite and
// PostgreSQL backends selected at startup.
package store

import (
	"sync"
	"time"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

// Store persists leads and completed question/answer exchanges.
type Store interface {
	AddLead(lead models.Lead) error
	GetLeads() ([]models.Lead, error)
	LogConversation(log models.ConversationLog) error
	GetConversationLogs() ([]models.ConversationLog, error)
	Close() error
}

// Opts holds configuration options for store implementations.
type Opts struct {
	DSN string
}

// Option configures a store backend.
type Option func(*Opts)

// WithDSN sets the database connection string (file path for SQLite).
func WithDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// InMemoryStore keeps everything in process memory. Safe for concurrent use.
type InMemoryStore struct {
	mu     sync.Mutex
	leads  []models.Lead
	logs   []models.ConversationLog
	nextID int64
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextID: 1}
}

// AddLead stores a lead, assigning it an id and creation time.
func (s *InMemoryStore) AddLead(lead models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lead.ID = s.nextID
	s.nextID++
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	s.leads = append(s.leads, lead)
	return nil
}

// GetLeads returns all stored leads.
func (s *InMemoryStore) GetLeads() ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

// LogConversation stores a question/answer exchange.
func (s *InMemoryStore) LogConversation(log models.ConversationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.ID = s.nextID
	s.nextID++
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	s.logs = append(s.logs, log)
	return nil
}

// GetConversationLogs returns all stored exchanges.
func (s *InMemoryStore) GetConversationLogs() ([]models.ConversationLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ConversationLog, len(s.logs))
	copy(out, s.logs)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error { return nil }
