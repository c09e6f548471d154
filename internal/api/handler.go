package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/erp-trainer/backend/internal/domain/exam"
	"github.com/erp-trainer/backend/internal/domain/question"
	"github.com/erp-trainer/backend/internal/domain/training"
	"github.com/erp-trainer/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	bank   *question.Bank
	store  *store.SQLiteStore
	logger *slog.Logger

	trainingSize int
	examConfig   exam.Config

	// In-flight sessions live only in memory: abandoning one discards
	// its state without a durable trace beyond answers already
	// persisted.
	mu       sync.Mutex
	training map[string]*training.Session
	exams    map[string]*exam.Session
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(bank *question.Bank, s *store.SQLiteStore, logger *slog.Logger, trainingSize int, examConfig exam.Config) *Handler {
	return &Handler{
		bank:         bank,
		store:        s,
		logger:       logger,
		trainingSize: trainingSize,
		examConfig:   examConfig,
		training:     make(map[string]*training.Session),
		exams:        make(map[string]*exam.Session),
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. Returns false (after
// writing a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the
// appropriate HTTP response. Returns true if an error was handled
// (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// ── Session registry ────────────────────────────────────────────────────────

func (h *Handler) putTrainingSession(s *training.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.training[s.ID] = s
}

func (h *Handler) trainingSession(id string) (*training.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.training[id]
	return s, ok
}

func (h *Handler) dropTrainingSession(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.training[id]
	delete(h.training, id)
	return ok
}

func (h *Handler) putExamSession(s *exam.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exams[s.ID] = s
}

func (h *Handler) examSession(id string) (*exam.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.exams[id]
	return s, ok
}

func (h *Handler) dropExamSession(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.exams[id]
	delete(h.exams, id)
	return ok
}
