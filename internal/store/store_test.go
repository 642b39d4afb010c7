package store

import (
	"path/filepath"
	"testing"

	"github.com/ae-wizard/worldimmigration/internal/models"
)

func sampleLead() models.Lead {
	return models.Lead{
		Name:           "Asha Patel",
		Email:          "asha@example.com",
		Phone:          "+1 555 0100",
		CurrentCountry: "India",
		Goal:           "Work in the US",
		Timeline:       "Within 6 months",
		AdditionalInfo: "Has a pending H1B petition",
	}
}

// storeContract exercises the Store interface against any backend.
func storeContract(t *testing.T, s Store) {
	t.Helper()

	leads, err := s.GetLeads()
	if err != nil {
		t.Fatalf("GetLeads on empty store: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("expected empty store, got %d leads", len(leads))
	}

	if err := s.AddLead(sampleLead()); err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	second := sampleLead()
	second.Email = "second@example.com"
	if err := s.AddLead(second); err != nil {
		t.Fatalf("AddLead second: %v", err)
	}

	leads, err = s.GetLeads()
	if err != nil {
		t.Fatalf("GetLeads: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].Email != "asha@example.com" || leads[1].Email != "second@example.com" {
		t.Errorf("leads out of insertion order: %q, %q", leads[0].Email, leads[1].Email)
	}
	if leads[0].ID == leads[1].ID {
		t.Errorf("leads should get distinct ids, both got %d", leads[0].ID)
	}
	if leads[0].CurrentCountry != "India" || leads[0].AdditionalInfo != "Has a pending H1B petition" {
		t.Errorf("lead fields not round-tripped: %+v", leads[0])
	}

	if err := s.LogConversation(models.ConversationLog{UserQuestion: "how long?", AssistantAnswer: "3-8 months"}); err != nil {
		t.Fatalf("LogConversation: %v", err)
	}
	logs, err := s.GetConversationLogs()
	if err != nil {
		t.Fatalf("GetConversationLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].UserQuestion != "how long?" || logs[0].AssistantAnswer != "3-8 months" {
		t.Errorf("log fields not round-tripped: %+v", logs[0])
	}
}

func TestInMemoryStore(t *testing.T) {
	s := NewInMemoryStore()
	defer s.Close()
	storeContract(t, s)
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "leads.db")
	s, err := NewSQLiteStore(WithDSN(dbPath))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()
	storeContract(t, s)
}

func TestSQLiteStore_RequiresDSN(t *testing.T) {
	if _, err := NewSQLiteStore(); err == nil {
		t.Fatal("expected error when DSN is missing")
	}
}

func TestInMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewInMemoryStore()
	_ = s.AddLead(sampleLead())

	leads, _ := s.GetLeads()
	leads[0].Name = "mutated"

	again, _ := s.GetLeads()
	if again[0].Name != "Asha Patel" {
		t.Error("GetLeads should return a copy, not the backing slice")
	}
}
