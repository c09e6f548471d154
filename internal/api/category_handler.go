package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/erp-trainer/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoryResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
	LearnedCount  int    `json:"learned_count"`
}

// AnswerOption is an answer as shown to a client: without its
// correctness flag, which is only revealed when grading.
type AnswerOption struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type QuestionPayload struct {
	ID         int            `json:"id"`
	CategoryID int            `json:"category_id"`
	Text       string         `json:"text"`
	Answers    []AnswerOption `json:"answers"`
}

type CategoryQuestionsResponse struct {
	Category  CategoryResponse   `json:"category"`
	Questions []CategoryQuestion `json:"questions"`
}

type CategoryQuestion struct {
	QuestionPayload
	Learned bool `json:"learned"`
}

func questionPayload(q question.Question) QuestionPayload {
	answers := make([]AnswerOption, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = AnswerOption{ID: a.ID, Text: a.Text}
	}
	return QuestionPayload{
		ID:         q.ID,
		CategoryID: q.CategoryID,
		Text:       q.Text,
		Answers:    answers,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCategories lists all categories with learned/total counts.
// @Summary      List categories
// @Description  Returns the fixed category list with per-category learned and total question counts.
// @Tags         Categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	learned := h.store.ProgressSet()

	categories := h.bank.Categories()
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		questions, _ := h.bank.ByCategory(c.ID)
		learnedCount := 0
		for _, q := range questions {
			if learned.Learned(q.ID, q.CategoryID) {
				learnedCount++
			}
		}
		resp[i] = CategoryResponse{
			ID:            c.ID,
			Name:          c.Name,
			QuestionCount: c.QuestionCount,
			LearnedCount:  learnedCount,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /categories/{categoryID}/questions
func (h *Handler) listCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	cat, err := h.bank.Category(categoryID)
	if err != nil {
		if errors.Is(err, question.ErrCategoryNotFound) {
			respondError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Error("category lookup", "error", err, "category_id", categoryID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	questions, _ := h.bank.ByCategory(categoryID)
	learned := h.store.ProgressSet()

	items := make([]CategoryQuestion, len(questions))
	learnedCount := 0
	for i, q := range questions {
		isLearned := learned.Learned(q.ID, q.CategoryID)
		if isLearned {
			learnedCount++
		}
		items[i] = CategoryQuestion{
			QuestionPayload: questionPayload(q),
			Learned:         isLearned,
		}
	}

	respondJSON(w, http.StatusOK, CategoryQuestionsResponse{
		Category: CategoryResponse{
			ID:            cat.ID,
			Name:          cat.Name,
			QuestionCount: cat.QuestionCount,
			LearnedCount:  learnedCount,
		},
		Questions: items,
	})
}
