package riasec

import (
	"sort"
	"strings"
)

// CodeLength is the number of letters in a Holland summary code.
const CodeLength = 3

// CategoryScore is one entry of a result breakdown.
type CategoryScore struct {
	Category Category
	Score    int
}

// Result is the outcome of scoring one completed session. Breakdown
// always covers all six categories, sorted by score descending with
// ties kept in canonical category order.
type Result struct {
	Code      string
	Breakdown []CategoryScore
}

// Score aggregates recorded ordinals into per-category totals and
// derives the 3-letter summary code. The function is pure: identical
// inputs always produce an identical Result, including breakdown order.
// Questions without a recorded answer contribute 0 rather than failing;
// the flow controller prevents that case from being reachable.
func Score(answers *AnswerStore, questions []Question) Result {
	totals := make(map[Category]int, NumCategories)
	for _, cat := range AllCategories() {
		totals[cat] = 0
	}

	for pos, q := range questions {
		if v, ok := answers.Get(AnswerKey{QuestionID: q.ID, Position: pos}); ok {
			totals[q.Category] += v
		}
	}

	// Seed the breakdown in canonical order so the stable sort breaks
	// ties R before I before A before S before E before C.
	breakdown := make([]CategoryScore, 0, NumCategories)
	for _, cat := range AllCategories() {
		breakdown = append(breakdown, CategoryScore{Category: cat, Score: totals[cat]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Score > breakdown[j].Score
	})

	var code strings.Builder
	for i := 0; i < CodeLength; i++ {
		code.WriteString(breakdown[i].Category.Letter())
	}

	return Result{Code: code.String(), Breakdown: breakdown}
}
