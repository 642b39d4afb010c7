package main

import (
	"os"
	"path/filepath"
	"testing"
)

func strPtr(s string) *string { return &s }

func testFlags(stateDir, driver, dsn string) Flags {
	return Flags{
		stateDir:       strPtr(stateDir),
		dbDriver:       strPtr(driver),
		dbDSN:          strPtr(dsn),
		openaiKey:      strPtr(""),
		apiAddr:        strPtr(DefaultAPIAddr),
		allowedOrigins: strPtr(""),
	}
}

func TestBuildStore_DefaultDSNUsesStateDir(t *testing.T) {
	dir := t.TempDir()
	st, err := buildStore(testFlags(dir, "", ""))
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	defer st.Close()

	dbPath := filepath.Join(dir, DefaultDBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database should land under the state directory, stat %s: %v", dbPath, err)
	}
}

func TestBuildStore_ExplicitDSNWins(t *testing.T) {
	stateDir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "explicit.db")
	st, err := buildStore(testFlags(stateDir, "", dbPath))
	if err != nil {
		t.Fatalf("buildStore: %v", err)
	}
	defer st.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("explicit DSN should be used, stat %s: %v", dbPath, err)
	}
	if _, err := os.Stat(filepath.Join(stateDir, DefaultDBFileName)); err == nil {
		t.Error("state directory must not get a database when a DSN is set")
	}
}

func TestFlagsOrigins(t *testing.T) {
	f := testFlags("", "", "")
	f.allowedOrigins = strPtr(" https://a.example , https://b.example ,")
	got := f.origins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("origins() = %v", got)
	}

	f.allowedOrigins = strPtr("")
	if got := f.origins(); got != nil {
		t.Errorf("empty flag should yield nil, got %v", got)
	}
}
