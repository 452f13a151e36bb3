package database

import (
	"context"
	"os"
	"testing"
	"time"
)

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_integration.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Test that tables were created by migrations
	tables := []string{"profiles", "progress_states", "settings", "blocked_words"}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		err := db.QueryRowContext(ctx, query, table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

// TestProgressStateUpsert tests the dialect upsert against a real database
func TestProgressStateUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_upsert.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	now := time.Now().UTC()
	_, err = db.Exec("INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"prof-1", "Mia", "Sunny Fox", "#ffcc00", now, now)
	if err != nil {
		t.Fatalf("Failed to insert profile: %v", err)
	}

	upsert := db.Dialect.UpsertProgressState()
	if _, err := db.Exec(upsert, "prof-1", 1, `{"stars":1}`, now); err != nil {
		t.Fatalf("Failed first upsert: %v", err)
	}
	if _, err := db.Exec(upsert, "prof-1", 1, `{"stars":5}`, now.Add(time.Minute)); err != nil {
		t.Fatalf("Failed second upsert: %v", err)
	}

	var state string
	if err := db.QueryRow("SELECT state FROM progress_states WHERE profile_id = ?", "prof-1").Scan(&state); err != nil {
		t.Fatalf("Failed to read state back: %v", err)
	}
	if state != `{"stars":5}` {
		t.Errorf("state = %s, want the second upsert to win", state)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM progress_states").Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("progress_states rows = %d, want 1", count)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_transactions.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	now := time.Now().UTC()

	// Test successful transaction
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}

	_, err = tx.Exec("INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"prof-tx", "Ravi", "Brave Owl", "#3366ff", now, now)
	if err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM profiles WHERE id = ?", "prof-tx").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 profile, got %d", count)
	}

	// Test rollback
	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}

	_, err = tx2.Exec("INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"prof-tx2", "Noor", "Quiet Deer", "#22aa55", now, now)
	if err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}

	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	err = db.QueryRow("SELECT COUNT(*) FROM profiles WHERE id = ?", "prof-tx2").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 profiles after rollback, got %d", count)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_concurrent.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	now := time.Now().UTC()
	_, err = db.Exec("INSERT INTO profiles (id, name, avatar_name, avatar_color, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"prof-c", "Leo", "Happy Seal", "#ff6633", now, now)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	// Run concurrent reads
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			var name string
			err := db.QueryRow("SELECT name FROM profiles WHERE id = ?", "prof-c").Scan(&name)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
			}
			if name != "Leo" {
				t.Errorf("Expected name 'Leo', got '%s'", name)
			}
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
}
