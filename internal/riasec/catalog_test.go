package riasec

import "testing"

func TestStandardCatalog(t *testing.T) {
	questions, err := Questions(ModeStandard)
	if err != nil {
		t.Fatalf("Questions(ModeStandard) error: %v", err)
	}

	if len(questions) != 42 {
		t.Errorf("standard catalog has %d questions, want 42", len(questions))
	}

	wantCounts := map[Category]int{
		Realistic:     6,
		Investigative: 7,
		Artistic:      7,
		Social:        7,
		Enterprising:  7,
		Conventional:  8,
	}
	counts := make(map[Category]int)
	for _, q := range questions {
		counts[q.Category]++
	}
	for cat, want := range wantCounts {
		if counts[cat] != want {
			t.Errorf("category %s has %d questions, want %d", cat.Letter(), counts[cat], want)
		}
	}
}

func TestStandardCatalogOptions(t *testing.T) {
	questions, err := Questions(ModeStandard)
	if err != nil {
		t.Fatalf("Questions(ModeStandard) error: %v", err)
	}

	for i, q := range questions {
		if len(q.Options) != 5 {
			t.Fatalf("question %d has %d options, want 5", i, len(q.Options))
		}
		for j, opt := range q.Options {
			if opt.Value != j {
				t.Errorf("question %d option %d has value %d, want %d", i, j, opt.Value, j)
			}
		}
	}
}

func TestReducedCatalog(t *testing.T) {
	questions, err := Questions(ModeReduced)
	if err != nil {
		t.Fatalf("Questions(ModeReduced) error: %v", err)
	}

	if len(questions) != NumCategories {
		t.Fatalf("reduced catalog has %d questions, want %d", len(questions), NumCategories)
	}

	// One per category, in canonical order, each the first of its category.
	full, err := Questions(ModeStandard)
	if err != nil {
		t.Fatalf("Questions(ModeStandard) error: %v", err)
	}
	for i, cat := range AllCategories() {
		if questions[i].Category != cat {
			t.Errorf("reduced question %d has category %s, want %s", i, questions[i].Category.Letter(), cat.Letter())
		}
		for _, q := range full {
			if q.Category == cat {
				if questions[i].Prompt != q.Prompt {
					t.Errorf("reduced question for %s is %q, want first catalog question %q", cat.Letter(), questions[i].Prompt, q.Prompt)
				}
				break
			}
		}
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	a, err := Questions(ModeStandard)
	if err != nil {
		t.Fatalf("Questions error: %v", err)
	}
	a[0].Prompt = "mutated"

	b, _ := Questions(ModeStandard)
	if b[0].Prompt == "mutated" {
		t.Error("mutating a returned question list leaked into the catalog")
	}
}

func TestValidateCatalog(t *testing.T) {
	goodOpts := []ResponseOption{
		{Value: 0, Label: "Strongly Dislike"},
		{Value: 1, Label: "Dislike"},
		{Value: 2, Label: "Neutral"},
		{Value: 3, Label: "Like"},
		{Value: 4, Label: "Strongly Like"},
	}
	questionPerCategory := func() []Question {
		var qs []Question
		for _, cat := range AllCategories() {
			qs = append(qs, Question{
				ID:       "riasec_" + cat.Letter(),
				Category: cat,
				Prompt:   "Do you like to test things?",
				Options:  goodOpts,
			})
		}
		return qs
	}

	t.Run("valid", func(t *testing.T) {
		if err := validateCatalog(questionPerCategory(), goodOpts); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty category", func(t *testing.T) {
		qs := questionPerCategory()[1:] // drop the only Realistic question
		if err := validateCatalog(qs, goodOpts); err == nil {
			t.Error("expected error for category with no questions")
		}
	})

	t.Run("mismatched id", func(t *testing.T) {
		qs := questionPerCategory()
		qs[0].ID = "riasec_C"
		if err := validateCatalog(qs, goodOpts); err == nil {
			t.Error("expected error for id/category mismatch")
		}
	})

	t.Run("duplicate option value", func(t *testing.T) {
		opts := append([]ResponseOption(nil), goodOpts...)
		opts[4].Value = 0
		if err := validateCatalog(questionPerCategory(), opts); err == nil {
			t.Error("expected error for duplicate option value")
		}
	})
}

func TestCategoryFromLetter(t *testing.T) {
	for _, cat := range AllCategories() {
		got, ok := CategoryFromLetter(cat.Letter())
		if !ok || got != cat {
			t.Errorf("CategoryFromLetter(%q) = %v, %v", cat.Letter(), got, ok)
		}
	}
	if _, ok := CategoryFromLetter("X"); ok {
		t.Error("CategoryFromLetter(\"X\") should not resolve")
	}
}
