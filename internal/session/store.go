package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Session is the persisted login state: the bearer token and the identity it
// belongs to. It lives in a single user-readable file so separate command
// invocations share one login.
type Session struct {
	Token   string    `json:"token"`
	UserID  int64     `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	SavedAt time.Time `json:"saved_at"`
}

func (s Session) Valid() bool {
	return s.Token != "" && s.UserID > 0
}

// Store reads and writes the session file. The file is created with 0600 and
// its directory with 0700; the token never appears anywhere else on disk.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted session. The second result is false when no
// session file exists or it holds no usable login.
func (s *Store) Load() (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := sonic.Unmarshal(raw, &sess); err != nil {
		return Session{}, false, fmt.Errorf("decode session file: %w", err)
	}
	if !sess.Valid() {
		return Session{}, false, nil
	}
	return sess, true, nil
}

func (s *Store) Save(sess Session) error {
	if !sess.Valid() {
		return fmt.Errorf("session requires a token and user id")
	}
	sess.SavedAt = time.Now().UTC()

	raw, err := sonic.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, or "" when logged out. Satisfies
// the gateway client's token source.
func (s *Store) Token() string {
	sess, ok, err := s.Load()
	if err != nil || !ok {
		return ""
	}
	return sess.Token
}
