package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps keys in a single JSON file. It backs the CLI cart, playing
// the role browser local storage plays for the web client: single-user,
// per-machine, silently degradable.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

func NewFile(path string, logger *log.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Available(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	data[probeKey] = "1"
	if !s.write(data) {
		return false
	}
	delete(data, probeKey)
	return s.write(data)
}

func (s *FileStore) Load(_ context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.read()[key]
	return val, ok
}

func (s *FileStore) Save(_ context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	data[key] = value
	s.write(data)
}

func (s *FileStore) Remove(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	if _, ok := data[key]; !ok {
		return
	}
	delete(data, key)
	s.write(data)
}

// read loads the backing file into a map. Missing or corrupt files yield an
// empty map; a corrupt store must degrade, never fail.
func (s *FileStore) read() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return map[string]string{}
	}
	return data
}

func (s *FileStore) write(data map[string]string) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.Printf("storage: encode %s: %v", s.path, err)
		return false
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Printf("storage: mkdir for %s: %v", s.path, err)
		return false
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Printf("storage: write %s: %v", s.path, err)
		return false
	}
	return true
}
