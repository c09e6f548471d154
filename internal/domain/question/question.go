package question

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrQuestionNotFound is returned when a question id does not exist.
	ErrQuestionNotFound = errors.New("question not found")
)

// Answer is one selectable option of a question. IDs are unique within
// their question only.
type Answer struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is a single multiple-choice question. Exactly one of its
// answers is correct; the Bank constructor enforces this.
type Question struct {
	ID         int      `json:"id"`
	CategoryID int      `json:"categoryId"`
	Text       string   `json:"text"`
	Answers    []Answer `json:"answers"`
}

// CorrectAnswerID returns the id of the question's correct answer.
func (q Question) CorrectAnswerID() int {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return a.ID
		}
	}
	return -1
}

// Answer returns the answer with the given id, or false if no such
// answer exists on this question.
func (q Question) Answer(answerID int) (Answer, bool) {
	for _, a := range q.Answers {
		if a.ID == answerID {
			return a, true
		}
	}
	return Answer{}, false
}

// Category is a fixed subject area of the exam.
type Category struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
}

// RawQuestion is the source-data shape of a question: answer options as
// plain strings plus the index of the correct one.
type RawQuestion struct {
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectAnswer  int      `json:"correctAnswer"`
	CategoryID     int      `json:"categoryId"`
	QuestionNumber int      `json:"questionNumber"`
}

// Bank is the immutable collection of all questions, grouped by
// category. It is built once at startup and never mutated.
type Bank struct {
	questions  []Question
	byCategory map[int][]Question
	byID       map[int]Question
	categories []Category
}

// NewBank validates and transforms raw source records into a Bank.
// Every record must name an existing category, carry at least two
// options, and point its correct-answer index at one of them.
func NewBank(raw []RawQuestion, categories []Category) (*Bank, error) {
	if len(categories) == 0 {
		return nil, errors.New("question bank needs at least one category")
	}

	known := make(map[int]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	b := &Bank{
		byCategory: make(map[int][]Question),
		byID:       make(map[int]Question),
	}

	for i, rq := range raw {
		if rq.Text == "" {
			return nil, fmt.Errorf("question %d: empty text", i)
		}
		if !known[rq.CategoryID] {
			return nil, fmt.Errorf("question %d: unknown category %d", rq.QuestionNumber, rq.CategoryID)
		}
		if len(rq.Options) < 2 {
			return nil, fmt.Errorf("question %d: needs at least 2 options, has %d", rq.QuestionNumber, len(rq.Options))
		}
		if rq.CorrectAnswer < 0 || rq.CorrectAnswer >= len(rq.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d out of range", rq.QuestionNumber, rq.CorrectAnswer)
		}
		if _, dup := b.byID[rq.QuestionNumber]; dup {
			return nil, fmt.Errorf("question %d: duplicate question number", rq.QuestionNumber)
		}

		answers := make([]Answer, len(rq.Options))
		for j, opt := range rq.Options {
			answers[j] = Answer{
				ID:        j,
				Text:      opt,
				IsCorrect: j == rq.CorrectAnswer,
			}
		}

		q := Question{
			ID:         rq.QuestionNumber,
			CategoryID: rq.CategoryID,
			Text:       rq.Text,
			Answers:    answers,
		}

		b.questions = append(b.questions, q)
		b.byCategory[q.CategoryID] = append(b.byCategory[q.CategoryID], q)
		b.byID[q.ID] = q
	}

	// Derive per-category question counts; the fixed category list stays
	// in declaration order.
	b.categories = make([]Category, len(categories))
	for i, c := range categories {
		c.QuestionCount = len(b.byCategory[c.ID])
		b.categories[i] = c
	}

	return b, nil
}

// Len returns the total number of questions in the bank. It is the
// denominator of the readiness percentage.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns every question in source order.
func (b *Bank) All() []Question {
	return b.questions
}

// Categories returns the fixed category list with derived question counts.
func (b *Bank) Categories() []Category {
	return b.categories
}

// Category returns the category with the given id.
func (b *Bank) Category(categoryID int) (Category, error) {
	for _, c := range b.categories {
		if c.ID == categoryID {
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

// ByCategory returns the questions of a single category.
func (b *Bank) ByCategory(categoryID int) ([]Question, error) {
	if _, err := b.Category(categoryID); err != nil {
		return nil, err
	}
	return b.byCategory[categoryID], nil
}

// ByID returns a single question.
func (b *Bank) ByID(questionID int) (Question, error) {
	q, ok := b.byID[questionID]
	if !ok {
		return Question{}, ErrQuestionNotFound
	}
	return q, nil
}

// GroupedByCategory returns a fresh categoryID -> questions map. The
// inner slices are copies, so callers may consume them destructively.
func (b *Bank) GroupedByCategory() map[int][]Question {
	grouped := make(map[int][]Question, len(b.byCategory))
	for catID, qs := range b.byCategory {
		cp := make([]Question, len(qs))
		copy(cp, qs)
		grouped[catID] = cp
	}
	return grouped
}
