// Package exam implements the mock exam session: a balanced fixed-size
// question draw, pass/fail scoring, and the persisted result history.
// An exam never marks a question learned; an incorrect exam answer
// revokes a learned status earned in training.
package exam

import (
	"errors"
	"sync"
	"time"

	"github.com/erp-trainer/backend/internal/domain/progress"
	"github.com/erp-trainer/backend/internal/domain/question"
	"github.com/erp-trainer/backend/internal/domain/sampler"
	"github.com/erp-trainer/backend/internal/id"
)

var (
	// ErrFinished is returned on answers submitted after finalization.
	ErrFinished = errors.New("exam already finished")
	// ErrAnswerNotFound is returned when the submitted answer id does
	// not belong to the current question.
	ErrAnswerNotFound = errors.New("answer not found on current question")
)

// ProgressStore is the read/write access an exam needs to revoke
// learned statuses. Satisfied by the sqlite store.
type ProgressStore interface {
	Get(questionID, categoryID int) (progress.Record, bool, error)
	Upsert(progress.Record) error
}

// HistoryAppender persists a finished exam result and returns its
// position in the history.
type HistoryAppender interface {
	Append(Result) (int, error)
}

// AnswerWithQuestion is one graded exam answer with a full snapshot of
// the question it answered, so historical results stay renderable even
// if the bank changes later.
type AnswerWithQuestion struct {
	QuestionID       int               `json:"questionId"`
	SelectedAnswerID int               `json:"selectedAnswerId"`
	Correct          bool              `json:"correct"`
	Question         question.Question `json:"question"`
}

// Result is an immutable scored exam record, appended to the history
// on completion and never mutated afterwards.
type Result struct {
	Date           time.Time            `json:"date"`
	Questions      []AnswerWithQuestion `json:"questions"`
	CorrectAnswers int                  `json:"correctAnswers"`
	TotalQuestions int                  `json:"totalQuestions"`
	Passed         bool                 `json:"passed"`
}

// Config holds the exam tunables.
type Config struct {
	Size          int // questions per exam
	PassThreshold int // correct answers needed to pass
}

// DefaultConfig returns the certification exam defaults: 14 questions,
// 12 correct to pass.
func DefaultConfig() Config {
	return Config{Size: 14, PassThreshold: 12}
}

// Session drives one mock exam from first question to scored result.
// Methods are safe for concurrent use: a mutex serializes answers and
// finalization, so the single-append guarantee holds even when HTTP
// handlers race on the same session.
type Session struct {
	ID string

	mu        sync.Mutex
	questions []question.Question
	index     int
	answers   []AnswerWithQuestion
	cfg       Config
	store     ProgressStore
	history   HistoryAppender
	now       func() time.Time

	finished    bool
	result      Result
	resultIndex int
}

// New draws a balanced exam set across all categories of the bank.
// Fails with sampler.ErrNotEnoughQuestions when the bank holds fewer
// questions than the exam size.
func New(bank *question.Bank, cfg Config, store ProgressStore, history HistoryAppender, now func() time.Time) (*Session, error) {
	questions, err := sampler.BalancedExamSample(bank.GroupedByCategory(), cfg.Size)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}

	return &Session{
		ID:        id.New(),
		questions: questions,
		cfg:       cfg,
		store:     store,
		history:   history,
		now:       now,
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

// Total returns the exam's question count.
func (s *Session) Total() int { return len(s.questions) }

// Finished reports whether the exam has been finalized.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Result returns the scored result and its history index once the
// exam is finished.
func (s *Session) Result() (Result, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.resultIndex, s.finished
}

// SubmitAnswer grades the current question and advances. An incorrect
// answer on a question previously learned in training downgrades it to
// unlearned; correct exam answers never touch progress. The last
// answer finalizes the exam and appends the result to the history.
func (s *Session) SubmitAnswer(answerID int) (AnswerWithQuestion, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return AnswerWithQuestion{}, false, ErrFinished
	}

	q := s.questions[s.index]
	selected, ok := q.Answer(answerID)
	if !ok {
		return AnswerWithQuestion{}, false, ErrAnswerNotFound
	}

	if !selected.IsCorrect {
		rec, exists, err := s.store.Get(q.ID, q.CategoryID)
		if err != nil {
			return AnswerWithQuestion{}, false, err
		}
		if exists && rec.LearnedInTraining {
			rec.LearnedInTraining = false
			if err := s.store.Upsert(rec); err != nil {
				return AnswerWithQuestion{}, false, err
			}
		}
	}

	answer := AnswerWithQuestion{
		QuestionID:       q.ID,
		SelectedAnswerID: answerID,
		Correct:          selected.IsCorrect,
		Question:         q,
	}
	s.answers = append(s.answers, answer)
	s.index++

	if s.index >= len(s.questions) {
		if err := s.finish(); err != nil {
			return AnswerWithQuestion{}, false, err
		}
	}
	return answer, s.finished, nil
}

// Finish finalizes the exam explicitly, e.g. when the caller abandons
// answering but wants the partial result scored. Calling it again
// returns the already-stored result; at most one history entry is ever
// appended for a session.
func (s *Session) Finish() (Result, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return s.result, s.resultIndex, nil
	}
	if err := s.finish(); err != nil {
		return Result{}, 0, err
	}
	return s.result, s.resultIndex, nil
}

// finish runs under the session mutex.
func (s *Session) finish() error {
	correct := 0
	for _, a := range s.answers {
		if a.Correct {
			correct++
		}
	}

	result := Result{
		Date:           s.now(),
		Questions:      s.answers,
		CorrectAnswers: correct,
		TotalQuestions: len(s.questions),
		Passed:         correct >= s.cfg.PassThreshold,
	}

	index, err := s.history.Append(result)
	if err != nil {
		// Nothing was persisted; the session stays open so the
		// caller can retry.
		return err
	}

	s.result = result
	s.resultIndex = index
	s.finished = true
	return nil
}
