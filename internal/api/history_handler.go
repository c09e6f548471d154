package api

import (
	"net/http"
	"strconv"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type HistoryEntry struct {
	Index          int       `json:"index"`
	Date           time.Time `json:"date"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	Passed         bool      `json:"passed"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listHistory lists all exam results, oldest first.
// @Summary      List exam history
// @Tags         History
// @Produce      json
// @Success      200  {array}  HistoryEntry
// @Router       /history [get]
func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	history := h.store.History()

	entries := make([]HistoryEntry, len(history))
	for i, result := range history {
		entries[i] = HistoryEntry{
			Index:          i,
			Date:           result.Date,
			CorrectAnswers: result.CorrectAnswers,
			TotalQuestions: result.TotalQuestions,
			Passed:         result.Passed,
		}
	}
	respondJSON(w, http.StatusOK, entries)
}

// getHistoryResult returns a single exam result with its full
// question snapshots.
// @Summary      Get one exam result
// @Tags         History
// @Produce      json
// @Param        index  path      int  true  "Position in the history, oldest first"
// @Success      200    {object}  ExamResultResponse
// @Failure      404    {object}  map[string]string
// @Router       /history/{index} [get]
func (h *Handler) getHistoryResult(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid history index")
		return
	}

	result, err := h.store.Result(index)
	if h.handleStoreError(w, err, "result") {
		return
	}

	respondJSON(w, http.StatusOK, ExamResultResponse{
		ResultIndex: index,
		Result:      result,
	})
}
