// Package catalog implements the name→price reference tables (the dish menu
// and the cost-item dictionary). Each catalog is one human-editable JSON
// document; key order in the document is the display order, so both decoding
// and encoding preserve it.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/juanchocce/proyecto-restaurante/internal/core"
	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

// Entry is one priced catalog item.
type Entry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Store struct {
	mu     sync.Mutex
	path   string
	seed   []Entry
	items  []Entry
	logger *applog.Logger
}

// New returns a store persisted at path. seed is written on first run when
// no document exists yet.
func New(path string, seed []Entry, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store{path: path, seed: seed, logger: logger.WithComponent(applog.ComponentCatalog)}
}

// Load reads the document. A missing file seeds the defaults and persists
// them immediately. A corrupt or unreadable file leaves the catalog empty
// and surfaces the error; the process continues degraded rather than
// aborting.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.items = append([]Entry(nil), s.seed...)
		if err := s.save(); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "catalog seeded with defaults", "path", s.path, "items", len(s.items))
		return nil
	}
	if err != nil {
		s.items = nil
		return fmt.Errorf("%w: read catalog %s: %v", core.ErrPersistence, s.path, err)
	}

	items, err := decode(data)
	if err != nil {
		s.items = nil
		return fmt.Errorf("%w: decode catalog %s: %v", core.ErrPersistence, s.path, err)
	}
	s.items = items
	s.logger.InfoContext(ctx, "catalog loaded", "path", s.path, "items", len(items))
	return nil
}

// Upsert sets or overwrites the price for name. price must parse as a
// non-negative decimal; on failure nothing is written.
func (s *Store) Upsert(ctx context.Context, name, price string) (float64, error) {
	v, err := core.ParsePrice(price)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Price = v
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, Entry{Name: name, Price: v})
	}
	if err := s.save(); err != nil {
		return v, err
	}
	s.logger.InfoContext(ctx, "catalog entry saved", "name", name, "price", v)
	return v, nil
}

// Remove deletes name from the catalog. Absent names are a no-op; existing
// ledger records keep their captured price snapshots either way.
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if err := s.save(); err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "catalog entry removed", "name", name)
			return nil
		}
	}
	return nil
}

// Items returns the catalog in insertion order.
func (s *Store) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.items...)
}

// Price looks up the current price for name.
func (s *Store) Price(name string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.Name == name {
			return it.Price, true
		}
	}
	return 0, false
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create catalog directory: %v", core.ErrPersistence, err)
		}
	}
	if err := os.WriteFile(s.path, encode(s.items), 0o644); err != nil {
		return fmt.Errorf("%w: write catalog %s: %v", core.ErrPersistence, s.path, err)
	}
	return nil
}

// encode renders the catalog as a JSON object, one key per line, in
// insertion order. encoding/json would sort map keys, so the object is
// built by hand.
func encode(items []Entry) []byte {
	var b bytes.Buffer
	b.WriteString("{\n")
	for i, it := range items {
		key, _ := json.Marshal(it.Name)
		b.WriteString("    ")
		b.Write(key)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(it.Price, 'f', -1, 64))
		if i < len(items)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.Bytes()
}

// decode parses a JSON object while keeping key order, which a plain
// map[string]float64 round trip would lose.
func decode(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var items []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		price, ok := valTok.(float64)
		if !ok {
			return nil, fmt.Errorf("price for %q is not a number", key)
		}
		items = append(items, Entry{Name: key, Price: price})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}
