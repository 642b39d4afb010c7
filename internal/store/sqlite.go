// Package store provides storage backends for captured leads.
//
// This file implements the SQLite-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/ae-wizard/worldimmigration/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

// SQLiteStore persists leads and conversation logs in a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLite store at the DSN file path, creating the
// parent directory and running migrations as needed.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DSN == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(cfg.DSN)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}
	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run SQLite migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLiteStore ready", "dsn", cfg.DSN)
	return &SQLiteStore{db: db}, nil
}

// AddLead inserts a lead row.
func (s *SQLiteStore) AddLead(lead models.Lead) error {
	_, err := s.db.Exec(
		`INSERT INTO leads (name, email, phone, current_country, goal, timeline, additional_info) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		lead.Name, lead.Email, lead.Phone, lead.CurrentCountry, lead.Goal, lead.Timeline, lead.AdditionalInfo,
	)
	if err != nil {
		slog.Error("SQLiteStore AddLead failed", "error", err, "email", lead.Email)
		return fmt.Errorf("failed to insert lead for %s: %w", lead.Email, err)
	}
	slog.Debug("SQLiteStore AddLead succeeded", "email", lead.Email)
	return nil
}

// GetLeads returns all lead rows in insertion order.
func (s *SQLiteStore) GetLeads() ([]models.Lead, error) {
	rows, err := s.db.Query(`SELECT id, name, email, phone, current_country, goal, timeline, additional_info, created_at FROM leads ORDER BY id`)
	if err != nil {
		slog.Error("SQLiteStore GetLeads query failed", "error", err)
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.CurrentCountry, &l.Goal, &l.Timeline, &l.AdditionalInfo, &l.CreatedAt); err != nil {
			slog.Error("SQLiteStore GetLeads scan failed", "error", err)
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lead rows: %w", err)
	}
	slog.Debug("SQLiteStore GetLeads succeeded", "count", len(leads))
	return leads, nil
}

// LogConversation inserts a question/answer row.
func (s *SQLiteStore) LogConversation(log models.ConversationLog) error {
	_, err := s.db.Exec(
		`INSERT INTO conversations (user_question, assistant_answer) VALUES (?, ?)`,
		log.UserQuestion, log.AssistantAnswer,
	)
	if err != nil {
		slog.Error("SQLiteStore LogConversation failed", "error", err)
		return fmt.Errorf("failed to insert conversation log: %w", err)
	}
	return nil
}

// GetConversationLogs returns all logged exchanges in insertion order.
func (s *SQLiteStore) GetConversationLogs() ([]models.ConversationLog, error) {
	rows, err := s.db.Query(`SELECT id, user_question, assistant_answer, created_at FROM conversations ORDER BY id`)
	if err != nil {
		slog.Error("SQLiteStore GetConversationLogs query failed", "error", err)
		return nil, fmt.Errorf("failed to query conversation logs: %w", err)
	}
	defer rows.Close()

	var logs []models.ConversationLog
	for rows.Next() {
		var l models.ConversationLog
		if err := rows.Scan(&l.ID, &l.UserQuestion, &l.AssistantAnswer, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversation log rows: %w", err)
	}
	return logs, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
