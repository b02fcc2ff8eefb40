package riasec

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed catalog.json
var rawCatalog []byte

// Mode selects which slice of the catalog an assessment session runs over.
type Mode int

const (
	// ModeStandard serves the full catalog in canonical authoring order.
	ModeStandard Mode = iota
	// ModeReduced serves one question per category (the first of each),
	// in canonical category order. Used for the quick assessment.
	ModeReduced
)

// String returns the mode name used in stored records and the UI.
func (m Mode) String() string {
	if m == ModeReduced {
		return "reduced"
	}
	return "standard"
}

// ModeFromString parses a stored mode name. Unknown values map to standard.
func ModeFromString(s string) Mode {
	if s == "reduced" {
		return ModeReduced
	}
	return ModeStandard
}

// ResponseOption is a single Likert option. The shared five-option scale
// (ordinals 0..4) is identical across all questions.
type ResponseOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question is one catalog item. IDs are category tags and repeat across
// questions of the same category, exactly as in the published inventory;
// a question is only unique within a session via its position.
type Question struct {
	ID       string
	Category Category
	Prompt   string
	Options  []ResponseOption
}

// catalogDoc is the on-disk shape of catalog.json.
type catalogDoc struct {
	Options   []ResponseOption `json:"options"`
	Questions []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
		Prompt   string `json:"prompt"`
	} `json:"questions"`
}

var (
	loadOnce sync.Once
	loadErr  error
	catalog  []Question
	options  []ResponseOption
)

// loadCatalog parses and validates the embedded catalog exactly once.
// A failure here is a build defect, not a runtime condition.
func loadCatalog() {
	if err := validateCatalogSchema(rawCatalog); err != nil {
		loadErr = fmt.Errorf("catalog misconfiguration: %w", err)
		return
	}

	var doc catalogDoc
	if err := json.Unmarshal(rawCatalog, &doc); err != nil {
		loadErr = fmt.Errorf("catalog misconfiguration: parse: %w", err)
		return
	}

	options = doc.Options
	catalog = make([]Question, 0, len(doc.Questions))
	for _, q := range doc.Questions {
		cat, ok := CategoryFromLetter(q.Category)
		if !ok {
			loadErr = fmt.Errorf("catalog misconfiguration: question %q has unknown category %q", q.Prompt, q.Category)
			return
		}
		catalog = append(catalog, Question{
			ID:       q.ID,
			Category: cat,
			Prompt:   q.Prompt,
			Options:  options,
		})
	}

	if err := validateCatalog(catalog, options); err != nil {
		loadErr = fmt.Errorf("catalog misconfiguration: %w", err)
		catalog = nil
	}
}

// LikertOptions returns the shared five-option response scale.
func LikertOptions() ([]ResponseOption, error) {
	loadOnce.Do(loadCatalog)
	if loadErr != nil {
		return nil, loadErr
	}
	return options, nil
}

// Questions returns the ordered question list for the given mode.
// Standard mode is the full catalog; reduced mode is the first question
// of each category, preserving canonical category order (6 questions).
func Questions(mode Mode) ([]Question, error) {
	loadOnce.Do(loadCatalog)
	if loadErr != nil {
		return nil, loadErr
	}

	if mode == ModeStandard {
		out := make([]Question, len(catalog))
		copy(out, catalog)
		return out, nil
	}

	out := make([]Question, 0, NumCategories)
	for _, cat := range AllCategories() {
		for _, q := range catalog {
			if q.Category == cat {
				out = append(out, q)
				break
			}
		}
	}
	return out, nil
}
