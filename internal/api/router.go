package api

import "net/http"

// RegisterRoutes attaches all application routes to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Categories
	mux.HandleFunc("GET /categories", h.listCategories)
	mux.HandleFunc("GET /categories/{categoryID}/questions", h.listCategoryQuestions)

	// Progress
	mux.HandleFunc("GET /progress", h.getProgress)
	mux.HandleFunc("POST /progress/reset", h.resetProgress)
	mux.HandleFunc("GET /export", h.exportAll)

	// Training sessions
	mux.HandleFunc("POST /training/sessions", h.startTraining)
	mux.HandleFunc("GET /training/sessions/{sessionID}", h.getTraining)
	mux.HandleFunc("POST /training/sessions/{sessionID}/answers", h.answerTraining)
	mux.HandleFunc("GET /training/sessions/{sessionID}/results", h.trainingResults)
	mux.HandleFunc("DELETE /training/sessions/{sessionID}", h.abandonTraining)

	// Exam sessions
	mux.HandleFunc("POST /exam/sessions", h.startExam)
	mux.HandleFunc("GET /exam/sessions/{sessionID}", h.getExam)
	mux.HandleFunc("POST /exam/sessions/{sessionID}/answers", h.answerExam)
	mux.HandleFunc("POST /exam/sessions/{sessionID}/finish", h.finishExam)
	mux.HandleFunc("DELETE /exam/sessions/{sessionID}", h.abandonExam)

	// Exam history
	mux.HandleFunc("GET /history", h.listHistory)
	mux.HandleFunc("GET /history/{index}", h.getHistoryResult)
}
