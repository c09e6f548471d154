package api

import (
	"errors"
	"net/http"

	"github.com/erp-trainer/backend/internal/domain/training"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartTrainingRequest struct {
	CategoryIDs []int `json:"category_ids"`
}

type SessionStateResponse struct {
	ID       string           `json:"id"`
	Index    int              `json:"index"`
	Total    int              `json:"total"`
	Finished bool             `json:"finished"`
	Question *QuestionPayload `json:"question,omitempty"`
}

type SubmitAnswerRequest struct {
	AnswerID *int `json:"answer_id"`
}

type AnswerResponse struct {
	Correct         bool `json:"correct"`
	CorrectAnswerID int  `json:"correct_answer_id"`
	Index           int  `json:"index"`
	Total           int  `json:"total"`
	Finished        bool `json:"finished"`
}

type TrainingResultsResponse struct {
	Answers      []training.Answer `json:"answers"`
	CorrectCount int               `json:"correct_count"`
	Total        int               `json:"total"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startTraining starts a training session.
// @Summary      Start a training session
// @Description  Samples up to the configured number of unlearned questions from the selected categories.
// @Tags         Training
// @Accept       json
// @Produce      json
// @Param        body  body      StartTrainingRequest  true  "Selected category ids"
// @Success      201   {object}  SessionStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no unlearned questions left in the selection"
// @Router       /training/sessions [post]
func (h *Handler) startTraining(w http.ResponseWriter, r *http.Request) {
	var req StartTrainingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := training.Start(h.bank, req.CategoryIDs, h.store.ProgressSet(), h.trainingSize, h.store)
	if err != nil {
		if errors.Is(err, training.ErrNoQuestions) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("start training", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	h.putTrainingSession(session)

	current, _ := session.Current()
	payload := questionPayload(current)
	respondJSON(w, http.StatusCreated, SessionStateResponse{
		ID:       session.ID,
		Index:    session.Index(),
		Total:    session.Total(),
		Question: &payload,
	})
}

// GET /training/sessions/{sessionID}
func (h *Handler) getTraining(w http.ResponseWriter, r *http.Request) {
	session, ok := h.trainingSession(r.PathValue("sessionID"))
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

// answerTraining submits an answer to the current question.
// @Summary      Answer a training question
// @Description  Grades the answer, updates the learned status and advances the session.
// @Tags         Training
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session id"
// @Param        body       body      SubmitAnswerRequest  true  "Selected answer id"
// @Success      200        {object}  AnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session already finished"
// @Router       /training/sessions/{sessionID}/answers [post]
func (h *Handler) answerTraining(w http.ResponseWriter, r *http.Request) {
	session, ok := h.trainingSession(r.PathValue("sessionID"))
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

	answer, err := session.SubmitAnswer(*req.AnswerID)
	if err != nil {
		switch {
		case errors.Is(err, training.ErrFinished):
			respondError(w, http.StatusConflict, "session already finished")
		case errors.Is(err, training.ErrAnswerNotFound):
			respondError(w, http.StatusBadRequest, "answer not found on current question")
		default:
			h.logger.Error("submit training answer", "error", err, "session", session.ID)
			respondError(w, http.StatusInternalServerError, "failed to record answer")
		}
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		Correct:         answer.Correct,
		CorrectAnswerID: answer.Question.CorrectAnswerID(),
		Index:           session.Index(),
		Total:           session.Total(),
		Finished:        session.Finished(),
	})
}

// GET /training/sessions/{sessionID}/results
func (h *Handler) trainingResults(w http.ResponseWriter, r *http.Request) {
	session, ok := h.trainingSession(r.PathValue("sessionID"))
	if !ok {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	if !session.Finished() {
		respondError(w, http.StatusConflict, "session not finished")
		return
	}

	log := session.Log()
	correct := 0
	for _, a := range log {
		if a.Correct {
			correct++
		}
	}

	respondJSON(w, http.StatusOK, TrainingResultsResponse{
		Answers:      log,
		CorrectCount: correct,
		Total:        session.Total(),
	})
}

// DELETE /training/sessions/{sessionID}
func (h *Handler) abandonTraining(w http.ResponseWriter, r *http.Request) {
	if !h.dropTrainingSession(r.PathValue("sessionID")) {
		respondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
