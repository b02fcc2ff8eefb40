package riasec

import (
	"reflect"
	"testing"
)

// answerAll records the same ordinal for every question in the list.
func answerAll(t *testing.T, questions []Question, value int) *AnswerStore {
	t.Helper()
	s := NewAnswerStore()
	for pos, q := range questions {
		if err := s.Record(AnswerKey{QuestionID: q.ID, Position: pos}, value); err != nil {
			t.Fatalf("record question %d: %v", pos, err)
		}
	}
	return s
}

func TestScoreTotalConservation(t *testing.T) {
	questions, err := Questions(ModeStandard)
	if err != nil {
		t.Fatal(err)
	}

	s := NewAnswerStore()
	sum := 0
	for pos, q := range questions {
		v := (pos*3 + 1) % 5 // deterministic spread over 0..4
		if err := s.Record(AnswerKey{QuestionID: q.ID, Position: pos}, v); err != nil {
			t.Fatal(err)
		}
		sum += v
	}

	result := Score(s, questions)
	total := 0
	for _, cs := range result.Breakdown {
		total += cs.Score
	}
	if total != sum {
		t.Errorf("breakdown total = %d, want sum of recorded ordinals %d", total, sum)
	}
}

func TestScoreDeterministic(t *testing.T) {
	questions, err := Questions(ModeStandard)
	if err != nil {
		t.Fatal(err)
	}
	s := answerAll(t, questions, 2)

	a := Score(s, questions)
	b := Score(s, questions)
	if a.Code != b.Code || !reflect.DeepEqual(a.Breakdown, b.Breakdown) {
		t.Errorf("Score is not deterministic: %+v vs %+v", a, b)
	}
}

func TestScoreTieBreakCanonicalOrder(t *testing.T) {
	questions, err := Questions(ModeReduced)
	if err != nil {
		t.Fatal(err)
	}
	s := answerAll(t, questions, 4)

	result := Score(s, questions)
	if result.Code != "RIA" {
		t.Errorf("all-tie code = %q, want \"RIA\"", result.Code)
	}
	for i, cat := range AllCategories() {
		if result.Breakdown[i].Category != cat {
			t.Errorf("breakdown[%d] = %s, want canonical %s", i, result.Breakdown[i].Category.Letter(), cat.Letter())
		}
		if result.Breakdown[i].Score != 4 {
			t.Errorf("breakdown[%d] score = %d, want 4", i, result.Breakdown[i].Score)
		}
	}
}

func TestScoreRealisticDominates(t *testing.T) {
	questions, err := Questions(ModeStandard)
	if err != nil {
		t.Fatal(err)
	}

	s := NewAnswerStore()
	realisticCount := 0
	for pos, q := range questions {
		v := 0
		if q.Category == Realistic {
			v = 4
			realisticCount++
		}
		if err := s.Record(AnswerKey{QuestionID: q.ID, Position: pos}, v); err != nil {
			t.Fatal(err)
		}
	}

	result := Score(s, questions)
	top := result.Breakdown[0]
	if top.Category != Realistic || top.Score != 4*realisticCount {
		t.Errorf("top entry = (%s, %d), want (R, %d)", top.Category.Letter(), top.Score, 4*realisticCount)
	}
	if result.Code[0] != 'R' {
		t.Errorf("code = %q, want leading R", result.Code)
	}
}

func TestScoreUnansweredContributeZero(t *testing.T) {
	questions, err := Questions(ModeReduced)
	if err != nil {
		t.Fatal(err)
	}

	// Only the Investigative question answered.
	s := NewAnswerStore()
	if err := s.Record(AnswerKey{QuestionID: questions[1].ID, Position: 1}, 3); err != nil {
		t.Fatal(err)
	}

	result := Score(s, questions)
	if len(result.Breakdown) != NumCategories {
		t.Fatalf("breakdown has %d entries, want %d", len(result.Breakdown), NumCategories)
	}
	if result.Breakdown[0].Category != Investigative || result.Breakdown[0].Score != 3 {
		t.Errorf("top entry = (%s, %d), want (I, 3)", result.Breakdown[0].Category.Letter(), result.Breakdown[0].Score)
	}
	if result.Code != "IRA" {
		t.Errorf("code = %q, want \"IRA\" (I first, then canonical zero ties)", result.Code)
	}
	if len(result.Code) != CodeLength {
		t.Errorf("code length = %d, want %d", len(result.Code), CodeLength)
	}
}
