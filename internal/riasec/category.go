package riasec

// Category represents one of the six RIASEC interest categories.
type Category uint8

const (
	Realistic Category = iota
	Investigative
	Artistic
	Social
	Enterprising
	Conventional
)

// NumCategories is the size of the fixed RIASEC domain.
const NumCategories = 6

// AllCategories returns the six categories in canonical order (R, I, A, S, E, C).
// Canonical order is also the tie-break order for scoring.
func AllCategories() []Category {
	return []Category{
		Realistic,
		Investigative,
		Artistic,
		Social,
		Enterprising,
		Conventional,
	}
}

// Letter returns the one-letter code for a category.
func (c Category) Letter() string {
	switch c {
	case Realistic:
		return "R"
	case Investigative:
		return "I"
	case Artistic:
		return "A"
	case Social:
		return "S"
	case Enterprising:
		return "E"
	case Conventional:
		return "C"
	default:
		return "?"
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case Realistic:
		return "Realistic (Doers)"
	case Investigative:
		return "Investigative (Thinkers)"
	case Artistic:
		return "Artistic (Creators)"
	case Social:
		return "Social (Helpers)"
	case Enterprising:
		return "Enterprising (Persuaders)"
	case Conventional:
		return "Conventional (Organizers)"
	default:
		return ""
	}
}

// CategoryFromLetter parses a one-letter code back to its Category.
// The second return value is false for anything outside the six codes.
func CategoryFromLetter(letter string) (Category, bool) {
	switch letter {
	case "R":
		return Realistic, true
	case "I":
		return Investigative, true
	case "A":
		return Artistic, true
	case "S":
		return Social, true
	case "E":
		return Enterprising, true
	case "C":
		return Conventional, true
	default:
		return 0, false
	}
}
