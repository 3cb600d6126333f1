package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session holds the bearer token for an API client. One session object is
// passed to New explicitly; there is no global token lookup. A session may be
// backed by a file so the token survives restarts.
type Session struct {
	mu    sync.Mutex
	token string
	path  string
}

// NewSession returns an in-memory session.
func NewSession() *Session {
	return &Session{}
}

// NewFileSession returns a session backed by the JSON file at path, loading
// an existing token if the file is present.
func NewFileSession(path string) (*Session, error) {
	s := &Session{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var stored struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(b, &stored); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	s.token = stored.Token
	return s, nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the token, persisting it when the session is file-backed.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.persist()
}

// Clear forgets the token (logout is purely client-side).
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) persist() error {
	if s.path == "" {
		return nil
	}
	b, err := json.Marshal(struct {
		Token string `json:"token"`
	}{Token: s.token})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}
