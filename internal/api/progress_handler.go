package api

import (
	"net/http"
	"time"

	"github.com/erp-trainer/backend/internal/domain/exam"
	"github.com/erp-trainer/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type ProgressResponse struct {
	ReadinessPercentage int `json:"readiness_percentage"`
	LearnedQuestions    int `json:"learned_questions"`
	TotalQuestions      int `json:"total_questions"`
}

type ExportData struct {
	Version      string            `json:"version"`
	ExportedAt   string            `json:"exported_at"`
	UserProgress []progress.Record `json:"userProgress"`
	ExamHistory  []exam.Result     `json:"examHistory"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProgress reports overall readiness.
// @Summary      Get readiness
// @Description  Returns the learned-question count and the readiness percentage over the full bank.
// @Tags         Progress
// @Produce      json
// @Success      200  {object}  ProgressResponse
// @Router       /progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	learned := h.store.LearnedCount()
	total := h.bank.Len()

	respondJSON(w, http.StatusOK, ProgressResponse{
		ReadinessPercentage: progress.Readiness(learned, total),
		LearnedQuestions:    learned,
		TotalQuestions:      total,
	})
}

// resetProgress clears all progress and the exam history.
// @Summary      Reset progress
// @Description  Clears the learned statuses and the exam history atomically.
// @Tags         Progress
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /progress/reset [post]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(); err != nil {
		h.logger.Error("reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to reset progress")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /export
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	exportData := ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		UserProgress: h.store.ProgressRecords(),
		ExamHistory:  h.store.History(),
	}

	w.Header().Set("Content-Disposition", `attachment; filename="erp-trainer-export.json"`)
	respondJSON(w, http.StatusOK, exportData)
}
