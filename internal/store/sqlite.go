// Package store persists user progress and exam history. The durable
// layout mirrors the browser-local storage of the original trainer:
// two named records in a key-value table, each a JSON-serialized
// sequence. Absent or unparsable records fail open as empty and get
// overwritten by the next successful write.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/erp-trainer/backend/internal/domain/exam"
	"github.com/erp-trainer/backend/internal/domain/progress"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

const (
	recordProgress = "userProgress"
	recordHistory  = "examHistory"
)

// SQLiteStore keeps progress and history in memory and writes the full
// updated record through to sqlite synchronously on every mutation, so
// a read immediately following a write always observes it. The mutex
// serializes mutations from concurrent HTTP handlers.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex

	records     []progress.Record
	recordIndex map[progress.Key]int
	history     []exam.Result
}

// NewSQLite opens (and if needed creates) the database at dbPath and
// loads both persisted records.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{
		db:          db,
		recordIndex: make(map[progress.Key]int),
	}
	s.load()
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// load reads both records, defaulting to empty on absence or decode
// failure. Corrupt values are not an error: the store must come up
// usable and the next write replaces them.
func (s *SQLiteStore) load() {
	if raw, ok := s.readRecord(recordProgress); ok {
		var records []progress.Record
		if json.Unmarshal([]byte(raw), &records) == nil {
			s.records = records
		}
	}
	for i, r := range s.records {
		s.recordIndex[progress.Key{QuestionID: r.QuestionID, CategoryID: r.CategoryID}] = i
	}

	if raw, ok := s.readRecord(recordHistory); ok {
		var history []exam.Result
		if json.Unmarshal([]byte(raw), &history) == nil {
			s.history = history
		}
	}
}

func (s *SQLiteStore) readRecord(name string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE name = ?", name).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) writeRecord(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO records (name, value) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET value = excluded.value",
		name, string(data),
	); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ── Progress ────────────────────────────────────────────────────────────────

// Get returns the progress record for the (questionID, categoryID)
// pair. The second return value is false when the question was never
// attempted; callers treat that the same as learnedInTraining=false.
func (s *SQLiteStore) Get(questionID, categoryID int) (progress.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.recordIndex[progress.Key{QuestionID: questionID, CategoryID: categoryID}]
	if !ok {
		return progress.Record{}, false, nil
	}
	return s.records[i], true, nil
}

// Upsert inserts or replaces the record for its (questionId,
// categoryId) key and persists the full mapping before returning. On a
// persist failure the in-memory state is left unchanged, so no partial
// write is ever observable.
func (s *SQLiteStore) Upsert(rec progress.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progress.Key{QuestionID: rec.QuestionID, CategoryID: rec.CategoryID}

	updated := make([]progress.Record, len(s.records), len(s.records)+1)
	copy(updated, s.records)
	i, exists := s.recordIndex[key]
	if exists {
		updated[i] = rec
	} else {
		updated = append(updated, rec)
	}

	if err := s.writeRecord(recordProgress, updated); err != nil {
		return err
	}

	s.records = updated
	if !exists {
		s.recordIndex[key] = len(s.records) - 1
	}
	return nil
}

// LearnedCount returns the number of questions currently marked
// learned in training.
func (s *SQLiteStore) LearnedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.records {
		if r.LearnedInTraining {
			n++
		}
	}
	return n
}

// ProgressSet returns a point-in-time view of all records for the
// sampler and the presentation layer.
func (s *SQLiteStore) ProgressSet() progress.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.NewSet(s.records)
}

// ProgressRecords returns a copy of the ordered record sequence as
// persisted.
func (s *SQLiteStore) ProgressRecords() []progress.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]progress.Record, len(s.records))
	copy(cp, s.records)
	return cp
}

// ── Exam history ────────────────────────────────────────────────────────────

// Append adds a result to the end of the history and returns its
// index. The full history is persisted before the append is
// observable.
func (s *SQLiteStore) Append(result exam.Result) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]exam.Result, len(s.history), len(s.history)+1)
	copy(updated, s.history)
	updated = append(updated, result)

	if err := s.writeRecord(recordHistory, updated); err != nil {
		return 0, err
	}

	s.history = updated
	return len(s.history) - 1, nil
}

// Result returns the exam result at the given position, or ErrNotFound
// when the index is out of range.
func (s *SQLiteStore) Result(index int) (exam.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.history) {
		return exam.Result{}, ErrNotFound
	}
	return s.history[index], nil
}

// History returns a copy of the full history, oldest first.
func (s *SQLiteStore) History() []exam.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]exam.Result, len(s.history))
	copy(cp, s.history)
	return cp
}

// ── Reset ───────────────────────────────────────────────────────────────────

// Reset clears progress and history in a single transaction: after it
// returns both are empty, and if it fails neither changed.
func (s *SQLiteStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records WHERE name IN (?, ?)", recordProgress, recordHistory); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.records = nil
	s.recordIndex = make(map[progress.Key]int)
	s.history = nil
	return nil
}
