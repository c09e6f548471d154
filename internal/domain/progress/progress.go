package progress

import "math"

// Record tracks the learned status of one question. Records are keyed
// by the (questionId, categoryId) pair, created lazily on first answer
// and updated in place afterwards.
type Record struct {
	QuestionID        int  `json:"questionId"`
	CategoryID        int  `json:"categoryId"`
	LearnedInTraining bool `json:"learnedInTraining"`
}

// Key identifies a record.
type Key struct {
	QuestionID int
	CategoryID int
}

// Set is an in-memory view of progress records keyed by question and
// category. A missing key reads the same as learnedInTraining=false.
type Set map[Key]Record

// NewSet builds a Set from a record slice. Later records win on
// duplicate keys, matching upsert-in-order semantics.
func NewSet(records []Record) Set {
	s := make(Set, len(records))
	for _, r := range records {
		s[Key{QuestionID: r.QuestionID, CategoryID: r.CategoryID}] = r
	}
	return s
}

// Learned reports whether the (questionID, categoryID) pair has been
// learned in training.
func (s Set) Learned(questionID, categoryID int) bool {
	r, ok := s[Key{QuestionID: questionID, CategoryID: categoryID}]
	return ok && r.LearnedInTraining
}

// LearnedCount returns the number of learned records in the set.
func (s Set) LearnedCount() int {
	n := 0
	for _, r := range s {
		if r.LearnedInTraining {
			n++
		}
	}
	return n
}

// Readiness returns the integer percentage of learned questions over
// the total question count known at startup. The denominator is never
// derived from the record set itself, which only holds questions that
// were attempted at least once.
func Readiness(learnedCount, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(learnedCount) / float64(totalQuestions)))
}
