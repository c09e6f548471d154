package sampler_test

import (
	"errors"
	"testing"

	"github.com/erp-trainer/backend/internal/domain/progress"
	"github.com/erp-trainer/backend/internal/domain/question"
	"github.com/erp-trainer/backend/internal/domain/sampler"
)

func makeQuestions(categoryID, from, n int) []question.Question {
	qs := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, question.Question{
			ID:         from + i,
			CategoryID: categoryID,
			Text:       "Вопрос",
			Answers: []question.Answer{
				{ID: 0, Text: "Да", IsCorrect: true},
				{ID: 1, Text: "Нет"},
			},
		})
	}
	return qs
}

func TestFilterByCategories_EmptySelectionYieldsNothing(t *testing.T) {
	qs := makeQuestions(1, 10, 5)

	if got := sampler.FilterByCategories(qs, nil); len(got) != 0 {
		t.Errorf("expected empty result for empty selection, got %d questions", len(got))
	}
}

func TestFilterByCategories_KeepsSelectedOnly(t *testing.T) {
	qs := append(makeQuestions(1, 10, 3), makeQuestions(2, 20, 2)...)

	got := sampler.FilterByCategories(qs, []int{2})
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	for _, q := range got {
		if q.CategoryID != 2 {
			t.Errorf("expected only category 2, got question %d in category %d", q.ID, q.CategoryID)
		}
	}
}

func TestUnlearnedFirst_ExcludesLearned(t *testing.T) {
	qs := makeQuestions(1, 10, 4)
	learned := progress.NewSet([]progress.Record{
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: true},
		{QuestionID: 12, CategoryID: 1, LearnedInTraining: false},
	})

	got := sampler.UnlearnedFirst(qs, learned)
	if len(got) != 3 {
		t.Fatalf("expected 3 unlearned questions, got %d", len(got))
	}
	for _, q := range got {
		if q.ID == 10 {
			t.Error("expected learned question 10 to be excluded")
		}
	}
}

func TestRandomSample_SizeAndUniqueness(t *testing.T) {
	qs := makeQuestions(1, 10, 20)

	got := sampler.RandomSample(qs, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(got))
	}

	seen := make(map[int]bool, len(got))
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("question %d sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRandomSample_FewerThanRequested(t *testing.T) {
	qs := makeQuestions(1, 10, 4)

	if got := sampler.RandomSample(qs, 10); len(got) != 4 {
		t.Errorf("expected all 4 questions, got %d", len(got))
	}
}

func TestRandomSample_InputUntouched(t *testing.T) {
	qs := makeQuestions(1, 10, 20)

	for i := 0; i < 10; i++ {
		sampler.RandomSample(qs, 5)
	}

	for i, q := range qs {
		if q.ID != 10+i {
			t.Fatal("expected input slice order to be preserved")
		}
	}
}

func TestRandomSample_Shuffles(t *testing.T) {
	qs := makeQuestions(1, 10, 20)

	// With 20 questions the chance of ten identical orderings in a
	// row is negligible.
	first := sampler.RandomSample(qs, 20)
	for i := 0; i < 10; i++ {
		next := sampler.RandomSample(qs, 20)
		for j := range next {
			if next[j].ID != first[j].ID {
				return
			}
		}
	}
	t.Error("expected sample order to vary across draws")
}

func TestBalancedExamSample_ExactCountNoDuplicates(t *testing.T) {
	pool := map[int][]question.Question{}
	for cat := 1; cat <= 14; cat++ {
		pool[cat] = makeQuestions(cat, cat*100, 3)
	}

	got, err := sampler.BalancedExamSample(pool, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 14 {
		t.Fatalf("expected 14 questions, got %d", len(got))
	}

	seen := make(map[int]bool, len(got))
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("question %d drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBalancedExamSample_DrainsSmallCategories(t *testing.T) {
	// One category holds a single question; a draw of the full pool
	// must still terminate and include it exactly once.
	pool := map[int][]question.Question{
		1: makeQuestions(1, 100, 1),
		2: makeQuestions(2, 200, 5),
	}

	got, err := sampler.BalancedExamSample(pool, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(got))
	}

	fromSmall := 0
	for _, q := range got {
		if q.CategoryID == 1 {
			fromSmall++
		}
	}
	if fromSmall != 1 {
		t.Errorf("expected exactly 1 question from the single-question category, got %d", fromSmall)
	}
}

func TestBalancedExamSample_NotEnoughQuestions(t *testing.T) {
	pool := map[int][]question.Question{
		1: makeQuestions(1, 100, 2),
	}

	if _, err := sampler.BalancedExamSample(pool, 14); !errors.Is(err, sampler.ErrNotEnoughQuestions) {
		t.Errorf("expected ErrNotEnoughQuestions, got %v", err)
	}
}

func TestBalancedExamSample_ZeroCount(t *testing.T) {
	got, err := sampler.BalancedExamSample(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty sample, got %d questions", len(got))
	}
}
