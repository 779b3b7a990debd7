package ledger

import (
	"context"
	"sort"
	"sync"

	applog "github.com/juanchocce/proyecto-restaurante/internal/log"
)

// Store owns the in-memory record set of one ledger kind. Every mutation
// rewrites the whole backing document synchronously; the in-memory set is
// the source of truth between writes.
type Store[R Record] struct {
	mu      sync.Mutex
	name    string
	backend Backend[R]
	records []R
	skipped []RowIssue
	logger  *applog.Logger
}

func NewStore[R Record](name string, backend Backend[R], logger *applog.Logger) *Store[R] {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store[R]{
		name:    name,
		backend: backend,
		logger:  logger.WithComponent(applog.ComponentLedger).With(applog.FieldLedger, name),
	}
}

// Load replaces the in-memory set with the persisted one, sorted newest
// first. Discarded rows are kept for Skipped and logged, never fatal.
func (s *Store[R]) Load(ctx context.Context) error {
	records, issues, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	sortByTimeDesc(records)

	s.mu.Lock()
	s.records = records
	s.skipped = issues
	s.mu.Unlock()

	for _, issue := range issues {
		s.logger.WarnContext(ctx, "discarded unparseable row",
			applog.FieldRow, issue.Row, applog.FieldError, issue.Err)
	}
	s.logger.InfoContext(ctx, "ledger loaded",
		"records", len(records), applog.FieldSkipped, len(issues))
	return nil
}

// Skipped returns the diagnostics of the last Load.
func (s *Store[R]) Skipped() []RowIssue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RowIssue(nil), s.skipped...)
}

// Records returns a snapshot copy in current order (timestamp descending).
func (s *Store[R]) Records() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]R(nil), s.records...)
}

// NextID returns 1 for an empty ledger, max(id)+1 otherwise.
func (s *Store[R]) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked()
}

func (s *Store[R]) nextIDLocked() int64 {
	var max int64
	for _, r := range s.records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}

// Append builds a record with the next free id, inserts it, re-sorts and
// persists. When the write-back fails the in-memory append is rolled back,
// so a failed Append leaves the ledger exactly as it was.
func (s *Store[R]) Append(ctx context.Context, build func(id int64) R) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	r := build(s.nextIDLocked())

	next := append(append([]R(nil), s.records...), r)
	sortByTimeDesc(next)
	if err := s.backend.Save(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "append not persisted, rolled back",
			applog.FieldRecordID, r.RecordID(), applog.FieldError, err)
		return zero, err
	}
	s.records = next
	return r, nil
}

// Delete removes the record with the given id; absent ids are a no-op and
// skip the rewrite. On write failure the in-memory state stays authoritative
// and the error is surfaced.
func (s *Store[R]) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if err := s.backend.Save(ctx, s.records); err != nil {
		s.logger.ErrorContext(ctx, "delete not persisted",
			applog.FieldRecordID, id, applog.FieldError, err)
		return err
	}
	return nil
}

// Update applies mutate to the record with the given id, re-sorts (the
// mutation may change the timestamp) and persists. The second return is
// false when the id is not present.
func (s *Store[R]) Update(ctx context.Context, id int64, mutate func(R) R) (R, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, false, nil
	}
	updated := mutate(s.records[idx])
	s.records[idx] = updated
	sortByTimeDesc(s.records)
	if err := s.backend.Save(ctx, s.records); err != nil {
		s.logger.ErrorContext(ctx, "update not persisted",
			applog.FieldRecordID, id, applog.FieldError, err)
		return updated, true, err
	}
	return updated, true, nil
}

func (s *Store[R]) indexOf(id int64) int {
	for i, r := range s.records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// sortByTimeDesc orders newest first. Timestamps share one fixed-width
// layout, so plain string comparison is chronological. The sort is stable:
// equal timestamps keep their relative order.
func sortByTimeDesc[R Record](records []R) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordTime() > records[j].RecordTime()
	})
}
