// Package store provides storage backends for captured leads.
//
// This file implements the PostgreSQL-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "embed"

	"github.com/ae-wizard/worldimmigration/internal/models"
	_ "github.com/lib/pq"
)

//go:embed migrations_postgres.sql
var postgresMigrations string

// PostgresStore persists leads and conversation logs in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres store from the DSN, running migrations
// as needed.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DSN == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}
	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run Postgres migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("PostgresStore ready")
	return &PostgresStore{db: db}, nil
}

// AddLead inserts a lead row.
func (s *PostgresStore) AddLead(lead models.Lead) error {
	_, err := s.db.Exec(
		`INSERT INTO leads (name, email, phone, current_country, goal, timeline, additional_info) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lead.Name, lead.Email, lead.Phone, lead.CurrentCountry, lead.Goal, lead.Timeline, lead.AdditionalInfo,
	)
	if err != nil {
		slog.Error("PostgresStore AddLead failed", "error", err, "email", lead.Email)
		return fmt.Errorf("failed to insert lead for %s: %w", lead.Email, err)
	}
	return nil
}

// GetLeads returns all lead rows in insertion order.
func (s *PostgresStore) GetLeads() ([]models.Lead, error) {
	rows, err := s.db.Query(`SELECT id, name, email, phone, current_country, goal, timeline, additional_info, created_at FROM leads ORDER BY id`)
	if err != nil {
		slog.Error("PostgresStore GetLeads query failed", "error", err)
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.CurrentCountry, &l.Goal, &l.Timeline, &l.AdditionalInfo, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lead rows: %w", err)
	}
	return leads, nil
}

// LogConversation inserts a question/answer row.
func (s *PostgresStore) LogConversation(log models.ConversationLog) error {
	_, err := s.db.Exec(
		`INSERT INTO conversations (user_question, assistant_answer) VALUES ($1, $2)`,
		log.UserQuestion, log.AssistantAnswer,
	)
	if err != nil {
		slog.Error("PostgresStore LogConversation failed", "error", err)
		return fmt.Errorf("failed to insert conversation log: %w", err)
	}
	return nil
}

// GetConversationLogs returns all logged exchanges in insertion order.
func (s *PostgresStore) GetConversationLogs() ([]models.ConversationLog, error) {
	rows, err := s.db.Query(`SELECT id, user_question, assistant_answer, created_at FROM conversations ORDER BY id`)
	if err != nil {
		slog.Error("PostgresStore GetConversationLogs query failed", "error", err)
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
