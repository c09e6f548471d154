package store_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/erp-trainer/backend/internal/domain/exam"
	"github.com/erp-trainer/backend/internal/domain/progress"
	"github.com/erp-trainer/backend/internal/store"
)

func openStore(t *testing.T, dbPath string) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "trainer.db")
}

func TestUpsert_RoundTrip(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	rec := progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: true}
	if err := s.Upsert(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := s.Get(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected record to exist")
	}
	if got != rec {
		t.Errorf("expected %+v, got %+v", rec, got)
	}
}

func TestGet_MissingRecord(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	_, ok, err := s.Get(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected no record for an unattempted question")
	}
}

func TestUpsert_ReplacesExisting(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	if err := s.Upsert(progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Upsert(progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _, _ := s.Get(10, 1)
	if got.LearnedInTraining {
		t.Error("expected second upsert to downgrade the record")
	}
	if len(s.ProgressRecords()) != 1 {
		t.Errorf("expected 1 record, got %d", len(s.ProgressRecords()))
	}
}

func TestLearnedCount(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	records := []progress.Record{
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: true},
		{QuestionID: 11, CategoryID: 1, LearnedInTraining: false},
		{QuestionID: 12, CategoryID: 2, LearnedInTraining: true},
	}
	for _, r := range records {
		if err := s.Upsert(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := s.LearnedCount(); got != 2 {
		t.Errorf("expected 2 learned, got %d", got)
	}
	if !s.ProgressSet().Learned(12, 2) {
		t.Error("expected question 12 to read as learned")
	}
}

func TestProgress_SurvivesReopen(t *testing.T) {
	dbPath := tempDBPath(t)

	s, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Upsert(progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error closing: %v", err)
	}

	reopened := openStore(t, dbPath)
	got, ok, err := reopened.Get(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || !got.LearnedInTraining {
		t.Errorf("expected learned record to survive reopen, got %+v ok=%v", got, ok)
	}
}

func TestLoad_CorruptRecordFailsOpen(t *testing.T) {
	dbPath := tempDBPath(t)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE records (name TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := db.Exec("INSERT INTO records (name, value) VALUES ('userProgress', 'not json')"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := openStore(t, dbPath)
	if got := len(s.ProgressRecords()); got != 0 {
		t.Errorf("expected corrupt record to read as empty, got %d records", got)
	}

	// The next write replaces the corrupt value.
	if err := s.Upsert(progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened := openStore(t, dbPath)
	if got := len(reopened.ProgressRecords()); got != 1 {
		t.Errorf("expected 1 record after overwrite, got %d", got)
	}
}

func examResult(correct int) exam.Result {
	return exam.Result{
		Date:           time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
		CorrectAnswers: correct,
		TotalQuestions: 14,
		Passed:         correct >= 12,
	}
}

func TestAppend_IndexesInOrder(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	for i := 0; i < 3; i++ {
		index, err := s.Append(examResult(10 + i))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if index != i {
			t.Errorf("expected index %d, got %d", i, index)
		}
	}

	history := s.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 results, got %d", len(history))
	}
	if history[0].CorrectAnswers != 10 {
		t.Errorf("expected oldest result first, got %d correct", history[0].CorrectAnswers)
	}
}

func TestResult_ByIndex(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	if _, err := s.Append(examResult(12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Result(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Passed {
		t.Error("expected a 12/14 result to be passed")
	}

	if _, err := s.Result(1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for index 1, got %v", err)
	}
	if _, err := s.Result(-1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for index -1, got %v", err)
	}
}

func TestHistory_SurvivesReopen(t *testing.T) {
	dbPath := tempDBPath(t)

	s, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Append(examResult(13)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened := openStore(t, dbPath)
	got, err := reopened.Result(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CorrectAnswers != 13 {
		t.Errorf("expected 13 correct, got %d", got.CorrectAnswers)
	}
	if !got.Date.Equal(examResult(13).Date) {
		t.Errorf("expected date to round-trip, got %v", got.Date)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	dbPath := tempDBPath(t)
	s := openStore(t, dbPath)

	if err := s.Upsert(progress.Record{QuestionID: 10, CategoryID: 1, LearnedInTraining: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Append(examResult(12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(s.ProgressRecords()); got != 0 {
		t.Errorf("expected no records after reset, got %d", got)
	}
	if got := len(s.History()); got != 0 {
		t.Errorf("expected no history after reset, got %d", got)
	}
	if got := s.LearnedCount(); got != 0 {
		t.Errorf("expected learned count 0 after reset, got %d", got)
	}
}

func TestReset_Idempotent(t *testing.T) {
	s := openStore(t, tempDBPath(t))

	if err := s.Reset(); err != nil {
		t.Fatalf("unexpected error on empty reset: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("unexpected error on repeated reset: %v", err)
	}
}
