package riasec

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks on the parsed catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(questions []Question, opts []ResponseOption) error {
	var errs []string

	// The shared scale must be exactly the ordinals 0..4, each once.
	seen := make(map[int]bool, len(opts))
	for _, o := range opts {
		if o.Value < 0 || o.Value > 4 {
			errs = append(errs, fmt.Sprintf("option %q has out-of-range value %d", o.Label, o.Value))
			continue
		}
		if seen[o.Value] {
			errs = append(errs, fmt.Sprintf("duplicate option value %d", o.Value))
		}
		seen[o.Value] = true
	}
	for v := 0; v <= 4; v++ {
		if !seen[v] {
			errs = append(errs, fmt.Sprintf("missing option value %d", v))
		}
	}

	counts := make(map[Category]int, NumCategories)
	for i, q := range questions {
		counts[q.Category]++
		if q.ID != "riasec_"+q.Category.Letter() {
			errs = append(errs, fmt.Sprintf("question %d: id %q does not match category %q", i, q.ID, q.Category.Letter()))
		}
		if len(q.Options) != len(opts) {
			errs = append(errs, fmt.Sprintf("question %d: expected %d options, got %d", i, len(opts), len(q.Options)))
		}
	}

	// Every category must have at least one question, or reduced mode
	// cannot produce its six-question form.
	for _, cat := range AllCategories() {
		if counts[cat] == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", cat.Letter()))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
