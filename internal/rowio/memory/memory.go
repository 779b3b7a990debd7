// Package memory provides an in-memory rowio.Table used by tests and as the
// degraded fallback when no file backend is available.
package memory

import (
	"context"
	"sync"
)

type Table struct {
	mu   sync.Mutex
	rows [][]string

	// WriteErr, when set, makes every WriteAll fail with it. Tests use this
	// to exercise persistence-failure paths.
	WriteErr error
}

func New() *Table { return &Table{} }

// Seed replaces the stored matrix without going through WriteAll.
func (t *Table) Seed(rows [][]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = cloneMatrix(rows)
}

func (t *Table) ReadAll(_ context.Context) ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneMatrix(t.rows), nil
}

func (t *Table) WriteAll(_ context.Context, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.WriteErr != nil {
		return t.WriteErr
	}
	t.rows = cloneMatrix(rows)
	return nil
}

func cloneMatrix(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, row := range in {
		out[i] = append([]string(nil), row...)
	}
	return out
}
