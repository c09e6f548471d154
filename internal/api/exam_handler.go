package api

import (
	"errors"
	"net/http"

	"github.com/erp-trainer/backend/internal/domain/exam"
	"github.com/erp-trainer/backend/internal/domain/sampler"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExamAnswerResponse struct {
	Correct     bool `json:"correct"`
	Index       int  `json:"index"`
	Total       int  `json:"total"`
	Finished    bool `json:"finished"`
	ResultIndex *int `json:"result_index,omitempty"`
}

type ExamResultResponse struct {
	ResultIndex int         `json:"result_index"`
	Result      exam.Result `json:"result"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startExam starts a mock exam session.
// @Summary      Start a mock exam
// @Description  Draws a balanced fixed-size question set across all categories.
// @Tags         Exam
// @Produce      json
// @Success      201  {object}  SessionStateResponse
// @Failure      409  {object}  map[string]string  "bank smaller than the exam size"
// @Router       /exam/sessions [post]
func (h *Handler) startExam(w http.ResponseWriter, r *http.Request) {
	session, err := exam.New(h.bank, h.examConfig, h.store, h.store, nil)
	if err != nil {
		if errors.Is(err, sampler.ErrNotEnoughQuestions) {
			respondError(w, http.StatusConflict, "not enough questions for an exam")
			return
		}
		h.logger.Error("start exam", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to start exam")
		return
	}

	h.putExamSession(session)

	current, _ := session.Current()
	payload := questionPayload(current)
	respondJSON(w, http.StatusCreated, SessionStateResponse{
		ID:       session.ID,
		Index:    session.Index(),
		Total:    session.Total(),
		Question: &payload,
	})
}

// GET /exam/sessions/{sessionID}
func (h *Handler) getExam(w http.ResponseWriter, r *http.Request) {
	session, ok := h.examSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	resp := SessionStateResponse{
		ID:       session.ID,
		Index:    session.Index(),
		Total:    session.Total(),
		Finished: session.Finished(),
	}
	if current, err := session.Current(); err == nil {
		payload := questionPayload(current)
		resp.Question = &payload
	}
	respondJSON(w, http.StatusOK, resp)
}

// answerExam submits an answer to the current exam question.
// @Summary      Answer an exam question
// @Description  Grades the answer (revoking learned status on a miss) and advances. The last answer finalizes the exam and returns the history index of its result.
// @Tags         Exam
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session id"
// @Param        body       body      SubmitAnswerRequest  true  "Selected answer id"
// @Success      200        {object}  ExamAnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "exam already finished"
// @Router       /exam/sessions/{sessionID}/answers [post]
func (h *Handler) answerExam(w http.ResponseWriter, r *http.Request) {
	session, ok := h.examSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.AnswerID == nil {
		respondError(w, http.StatusBadRequest, "answer_id is required")
		return
	}

	answer, finished, err := session.SubmitAnswer(*req.AnswerID)
	if err != nil {
		switch {
		case errors.Is(err, exam.ErrFinished):
			respondError(w, http.StatusConflict, "exam already finished")
		case errors.Is(err, exam.ErrAnswerNotFound):
			respondError(w, http.StatusBadRequest, "answer not found on current question")
		default:
			h.logger.Error("submit exam answer", "error", err, "session", session.ID)
			respondError(w, http.StatusInternalServerError, "failed to record answer")
		}
		return
	}

	resp := ExamAnswerResponse{
		Correct:  answer.Correct,
		Index:    session.Index(),
		Total:    session.Total(),
		Finished: finished,
	}
	if finished {
		if _, index, done := session.Result(); done {
			resp.ResultIndex = &index
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /exam/sessions/{sessionID}/finish
//
// Finalizes the exam with the answers given so far. Idempotent: a
// second call returns the same result without a second history entry.
func (h *Handler) finishExam(w http.ResponseWriter, r *http.Request) {
	session, ok := h.examSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}

	result, index, err := session.Finish()
	if err != nil {
		h.logger.Error("finish exam", "error", err, "session", session.ID)
		respondError(w, http.StatusInternalServerError, "failed to finish exam")
		return
	}

	respondJSON(w, http.StatusOK, ExamResultResponse{
		ResultIndex: index,
		Result:      result,
	})
}

// DELETE /exam/sessions/{sessionID}
func (h *Handler) abandonExam(w http.ResponseWriter, r *http.Request) {
	if !h.dropExamSession(r.PathValue("sessionID")) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
