package database

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const blockedWordsURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// SeedBlockedWords fetches and seeds the word list used to screen
// parent-entered profile names. No-op when the table is already
// populated, so offline restarts keep working after the first seed.
func (db *DB) SeedBlockedWords() error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM blocked_words").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check blocked words count: %w", err)
	}

	if count > 0 {
		log.Printf("Name filter already populated with %d words", count)
		return nil
	}

	log.Println("Downloading blocked words list...")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(blockedWordsURL)
	if err != nil {
		return fmt.Errorf("failed to download blocked words list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status code from blocked words URL: %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	wordsAdded := 0

	// Bulk insert in one transaction
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := db.Dialect.RewriteQuery("INSERT INTO blocked_words (word) VALUES (?)")

	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if word == "" {
			continue
		}

		if _, err := stmt.Exec(word); err != nil {
			// Skip duplicates, keep adding the rest
			continue
		}
		wordsAdded++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading blocked words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Name filter populated with %d words", wordsAdded)
	return nil
}

// IsWordBlocked checks a single word against the filter.
func (db *DB) IsWordBlocked(word string) (bool, error) {
	cleanWord := strings.TrimSpace(strings.ToLower(word))

	var count int
	query := "SELECT COUNT(*) FROM blocked_words WHERE word = ?"
	err := db.QueryRow(query, cleanWord).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked word: %w", err)
	}

	return count > 0, nil
}

// ScreenName checks every whitespace-separated token of a profile name
// against the filter and returns the tokens that are blocked.
func (db *DB) ScreenName(name string) ([]string, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return nil, nil
	}

	var blocked []string
	for _, token := range tokens {
		isBlocked, err := db.IsWordBlocked(token)
		if err != nil {
			return nil, err
		}
		if isBlocked {
			blocked = append(blocked, token)
		}
	}

	return blocked, nil
}
