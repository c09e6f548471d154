// Package training implements the practice mode session: a fixed run
// of unlearned questions where each answer updates the learned status
// of its question. Training is the only place a question can become
// learned; exams can only revoke the flag.
package training

import (
	"errors"
	"sync"

	"github.com/erp-trainer/backend/internal/domain/progress"
	"github.com/erp-trainer/backend/internal/domain/question"
	"github.com/erp-trainer/backend/internal/domain/sampler"
	"github.com/erp-trainer/backend/internal/id"
)

var (
	// ErrNoQuestions means the category selection yields no unlearned
	// questions; the session is refused instead of started empty.
	ErrNoQuestions = errors.New("no unlearned questions in selected categories")
	// ErrFinished is returned on answers submitted past the last question.
	ErrFinished = errors.New("session already finished")
	// ErrAnswerNotFound is returned when the submitted answer id does
	// not belong to the current question.
	ErrAnswerNotFound = errors.New("answer not found on current question")
)

// ProgressWriter persists learned-status updates. Satisfied by the
// sqlite store.
type ProgressWriter interface {
	Upsert(progress.Record) error
}

// Answer is one entry of the session's answer log, with a snapshot of
// the question it answered for the results view.
type Answer struct {
	QuestionID       int               `json:"questionId"`
	SelectedAnswerID int               `json:"selectedAnswerId"`
	Correct          bool              `json:"correct"`
	Question         question.Question `json:"question"`
}

// Session walks a fixed question list one answer at a time. Methods
// are safe for concurrent use: a mutex serializes answers from
// concurrent handlers, so the grade-persist-advance sequence of one
// answer never interleaves with another.
type Session struct {
	ID string

	mu        sync.Mutex
	questions []question.Question
	index     int
	log       []Answer
	store     ProgressWriter
	finished  bool
}

// Start builds a training session over the selected categories:
// category filter, then unlearned-only, then a uniform sample of at
// most size questions. Refused with ErrNoQuestions when the pipeline
// comes up empty, including the empty category selection.
func Start(bank *question.Bank, categoryIDs []int, learned progress.Set, size int, store ProgressWriter) (*Session, error) {
	candidates := sampler.FilterByCategories(bank.All(), categoryIDs)
	candidates = sampler.UnlearnedFirst(candidates, learned)
	selected := sampler.RandomSample(candidates, size)
	if len(selected) == 0 {
		return nil, ErrNoQuestions
	}

	return &Session{
		ID:        id.New(),
		questions: selected,
		store:     store,
	}, nil
}

// Current returns the question waiting for an answer.
func (s *Session) Current() (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return question.Question{}, ErrFinished
	}
	return s.questions[s.index], nil
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Total returns the session's question count.
func (s *Session) Total() int { return len(s.questions) }

// Finished reports whether the session passed its last question.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Log returns a copy of the answer log collected so far, full once
// finished.
func (s *Session) Log() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]Answer, len(s.log))
	copy(cp, s.log)
	return cp
}

// SubmitAnswer grades the current question, records the learned status
// (correct answers mark the question learned, incorrect ones unlearn
// it regardless of prior state), appends to the log and advances. The
// progress write happens before the session state moves, so a failed
// persist leaves the question still current.
func (s *Session) SubmitAnswer(answerID int) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return Answer{}, ErrFinished
	}

	q := s.questions[s.index]
	selected, ok := q.Answer(answerID)
	if !ok {
		return Answer{}, ErrAnswerNotFound
	}

	if err := s.store.Upsert(progress.Record{
		QuestionID:        q.ID,
		CategoryID:        q.CategoryID,
		LearnedInTraining: selected.IsCorrect,
	}); err != nil {
		return Answer{}, err
	}

	answer := Answer{
		QuestionID:       q.ID,
		SelectedAnswerID: answerID,
		Correct:          selected.IsCorrect,
		Question:         q,
	}
	s.log = append(s.log, answer)

	s.index++
	if s.index >= len(s.questions) {
		s.finished = true
	}
	return answer, nil
}
