package progress_test

import (
	"testing"

	"github.com/erp-trainer/backend/internal/domain/progress"
)

func TestSet_Learned(t *testing.T) {
	set := progress.NewSet([]progress.Record{
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: true},
		{QuestionID: 11, CategoryID: 1, LearnedInTraining: false},
	})

	if !set.Learned(10, 1) {
		t.Error("expected question 10 to be learned")
	}
	if set.Learned(11, 1) {
		t.Error("expected question 11 to not be learned")
	}
	if set.Learned(12, 1) {
		t.Error("expected unknown question to not be learned")
	}
}

func TestNewSet_LaterRecordWins(t *testing.T) {
	set := progress.NewSet([]progress.Record{
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: true},
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: false},
	})

	if set.Learned(10, 1) {
		t.Error("expected later record to win over earlier one")
	}
}

func TestSet_LearnedCount(t *testing.T) {
	set := progress.NewSet([]progress.Record{
		{QuestionID: 10, CategoryID: 1, LearnedInTraining: true},
		{QuestionID: 11, CategoryID: 1, LearnedInTraining: false},
		{QuestionID: 12, CategoryID: 2, LearnedInTraining: true},
	})

	if got := set.LearnedCount(); got != 2 {
		t.Errorf("expected 2 learned, got %d", got)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name    string
		learned int
		total   int
		want    int
	}{
		{"empty", 0, 741, 0},
		{"full", 741, 741, 100},
		{"half rounds up", 370, 741, 50},
		{"third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"zero total", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progress.Readiness(tt.learned, tt.total); got != tt.want {
				t.Errorf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}
