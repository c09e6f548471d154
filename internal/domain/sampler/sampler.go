// Package sampler selects question subsets for training and exam
// sessions. Every function is pure: the full candidate set and the
// relevant progress records come in as arguments, nothing is cached.
package sampler

import (
	"errors"
	"math/rand"

	"github.com/erp-trainer/backend/internal/domain/progress"
	"github.com/erp-trainer/backend/internal/domain/question"
)

// ErrNotEnoughQuestions is returned when an exam sample is requested
// over a pool smaller than the requested size.
var ErrNotEnoughQuestions = errors.New("not enough questions for requested sample")

// FilterByCategories keeps only questions whose category is in the
// given set. An empty set filters everything out: no categories
// selected means no questions, not all questions.
func FilterByCategories(questions []question.Question, categoryIDs []int) []question.Question {
	if len(categoryIDs) == 0 {
		return nil
	}
	selected := make(map[int]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = true
	}

	var filtered []question.Question
	for _, q := range questions {
		if selected[q.CategoryID] {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// UnlearnedFirst drops questions already learned in training. A
// question without a progress record counts as unlearned.
func UnlearnedFirst(questions []question.Question, learned progress.Set) []question.Question {
	var unlearned []question.Question
	for _, q := range questions {
		if !learned.Learned(q.ID, q.CategoryID) {
			unlearned = append(unlearned, q)
		}
	}
	return unlearned
}

// RandomSample returns min(n, len(questions)) questions, uniformly
// shuffled. The input slice is left untouched.
func RandomSample(questions []question.Question, n int) []question.Question {
	if n <= 0 || len(questions) == 0 {
		return nil
	}

	shuffled := make([]question.Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// BalancedExamSample builds an exam set of exactly count unique
// questions by repeatedly drawing a random non-empty category and a
// random remaining question from it. Picked questions leave the
// working pool, emptied categories leave the category list, so the
// draw always terminates. With fewer than count questions in total it
// fails instead of spinning.
func BalancedExamSample(questionsByCategory map[int][]question.Question, count int) ([]question.Question, error) {
	if count <= 0 {
		return nil, nil
	}

	total := 0
	pool := make(map[int][]question.Question, len(questionsByCategory))
	var categories []int
	for catID, qs := range questionsByCategory {
		if len(qs) == 0 {
			continue
		}
		cp := make([]question.Question, len(qs))
		copy(cp, qs)
		pool[catID] = cp
		categories = append(categories, catID)
		total += len(qs)
	}

	if total < count {
		return nil, ErrNotEnoughQuestions
	}

	result := make([]question.Question, 0, count)
	for len(result) < count {
		ci := rand.Intn(len(categories))
		catID := categories[ci]
		qs := pool[catID]

		qi := rand.Intn(len(qs))
		result = append(result, qs[qi])

		qs[qi] = qs[len(qs)-1]
		pool[catID] = qs[:len(qs)-1]
		if len(pool[catID]) == 0 {
			categories[ci] = categories[len(categories)-1]
			categories = categories[:len(categories)-1]
		}
	}
	return result, nil
}
