package qa

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Pair is a stored question/answer record.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// document is the on-disk shape of the store file.
type document struct {
	Pairs []Pair `json:"pairs"`
}

// Store persists the full pair list as a single pretty-printed JSON document.
// Every mutation rewrites the whole file under one mutex, so concurrent
// command invocations in the same process cannot lose writes.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the store file with an empty pair list when it does not exist
// yet. An existing file is left untouched.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat QA file '%s': %w", s.path, err)
	}
	return s.saveLocked(nil)
}

// Load returns the stored pairs. A missing or malformed file degrades to an
// empty list so callers never have to handle a load error.
func (s *Store) Load() []Pair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() []Pair {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read QA file '%s': %v. Treating as empty.", s.path, err)
		}
		return nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Failed to parse QA file '%s': %v. Treating as empty.", s.path, err)
		return nil
	}
	return doc.Pairs
}

// Save overwrites the store file with the given pairs.
func (s *Store) Save(pairs []Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(pairs)
}

func (s *Store) saveLocked(pairs []Pair) error {
	doc := document{Pairs: pairs}
	if doc.Pairs == nil {
		doc.Pairs = []Pair{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode QA document: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for '%s': %w", s.path, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write QA file '%s': %w", s.path, err)
	}
	return nil
}

// Add appends a pair and persists the whole document.
func (s *Store) Add(p Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := append(s.loadLocked(), p)
	return s.saveLocked(pairs)
}

// Delete removes the first pair whose question equals q case-insensitively.
// It reports whether a pair was removed; containment is deliberately not
// enough here, only exact matches delete.
func (s *Store) Delete(q string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := s.loadLocked()
	for n, p := range pairs {
		if strings.EqualFold(p.Question, q) {
			pairs = append(pairs[:n], pairs[n+1:]...)
			return true, s.saveLocked(pairs)
		}
	}
	return false, nil
}
