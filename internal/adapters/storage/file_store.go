package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hostelmanager/hostel-access-service/internal/core/domain"
	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

// sessionRecord is the single durable record: serialized user, token string
// and logged-in flag under one app-private file.
type sessionRecord struct {
	User     *domain.User `json:"user"`
	Token    string       `json:"token"`
	LoggedIn bool         `json:"logged_in"`
}

// FileStore persists the session as a JSON file. Writes go through a temp
// file and rename so a crash mid-write never leaves a torn record. A missing
// file reads as a logged-out session, which makes Clear idempotent.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ ports.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, user *domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sessionRecord{User: user, Token: token, LoggedIn: true})
}

func (s *FileStore) User(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return nil, err
	}
	return rec.User, nil
}

func (s *FileStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return "", err
	}
	return rec.Token, nil
}

func (s *FileStore) IsLoggedIn(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return false, err
	}
	return rec.LoggedIn, nil
}

func (s *FileStore) UpdateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return err
	}
	rec.User = user
	return s.write(rec)
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) read() (sessionRecord, error) {
	var rec sessionRecord
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return sessionRecord{}, err
	}
	return rec, nil
}

func (s *FileStore) write(rec sessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "session-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
