// Package sessioncache persists the signed-in account and its OAuth2 token.
package sessioncache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tesso57/availnot/internal/domain/account"
	"golang.org/x/oauth2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no entry exists for an account key.
var ErrNotFound = errors.New("session not cached")

// Store is a SQLite backed cache keyed by tenant and client id.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Key builds the cache key of an app registration.
func Key(tenant, clientID string) string {
	return strings.ToLower(strings.TrimSpace(tenant)) + "/" + strings.TrimSpace(clientID)
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session cache: %w", err)
	}
	// A single connection keeps :memory: databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping session cache: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate session cache: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	const query = `
	CREATE TABLE IF NOT EXISTS accounts (
		account_key TEXT PRIMARY KEY,
		token TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		user_name TEXT NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveToken stores tok for key, keeping any cached account attributes.
func (s *Store) SaveToken(key string, tok *oauth2.Token) error {
	if tok == nil {
		return fmt.Errorf("nil token for %s", key)
	}
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO accounts (account_key, token, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(account_key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// LoadToken returns the token cached for key, or ErrNotFound.
func (s *Store) LoadToken(key string) (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRow(`SELECT token FROM accounts WHERE account_key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && raw == "") {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &tok, nil
}

// SaveSession stores the display attributes of the signed-in account.
func (s *Store) SaveSession(key string, session *account.Session) error {
	if session == nil {
		return fmt.Errorf("nil session for %s", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO accounts (account_key, name, user_name, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(account_key) DO UPDATE SET name = excluded.name, user_name = excluded.user_name, updated_at = excluded.updated_at`,
		key, session.Name, session.UserName, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadSession returns the cached account attributes for key, or ErrNotFound.
// An entry with neither a display name nor a user name is treated as missing.
func (s *Store) LoadSession(key string) (*account.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var session account.Session
	err := s.db.QueryRow(`SELECT name, user_name FROM accounts WHERE account_key = ?`, key).
		Scan(&session.Name, &session.UserName)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && session.Name == "" && session.UserName == "") {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// Delete forgets everything cached for key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM accounts WHERE account_key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
