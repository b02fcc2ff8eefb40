package jobs

import "github.com/Max-Nicolai/MindPath/internal/riasec"

// secondaryKeywordCount is how many of the secondary trait's titles are
// mixed into the search alongside the primary trait's full list.
const secondaryKeywordCount = 5

// categoryKeywords maps each RIASEC category to job titles used as
// search terms against the postings provider.
var categoryKeywords = map[riasec.Category][]string{
	riasec.Realistic: {
		"Mechanical Engineer", "Electrical Engineer", "Civil Engineer",
		"Technician", "Mechanic", "Carpenter", "Electrician",
		"Driver", "Construction Manager", "Safety Officer", "Network Engineer",
	},
	riasec.Investigative: {
		"Data Scientist", "Software Engineer", "Research Scientist",
		"Data Analyst", "Biologist", "Chemist", "Pharmacist",
		"Systems Analyst", "Backend Developer", "Algorithm Engineer",
	},
	riasec.Artistic: {
		"Graphic Designer", "UX Designer", "Product Designer",
		"Art Director", "Copywriter", "Content Creator",
		"Architect", "Illustrator", "Video Editor", "Frontend Developer",
	},
	riasec.Social: {
		"Registered Nurse", "Teacher", "Social Worker", "Counselor",
		"Human Resources Manager", "Recruiter", "Customer Success Manager",
		"Physical Therapist", "Occupational Therapist", "Corporate Trainer",
	},
	riasec.Enterprising: {
		"Sales Manager", "Account Executive", "Product Manager",
		"Marketing Manager", "Business Development Representative",
		"Real Estate Agent", "Project Manager", "Chief of Staff",
	},
	riasec.Conventional: {
		"Accountant", "Financial Analyst", "Auditor", "Bookkeeper",
		"Administrative Assistant", "Compliance Officer", "Data Entry",
		"Bank Teller", "Logistics Coordinator", "Quality Assurance",
	},
}

// KeywordsForCode expands a summary code into search keywords: the full
// keyword list of the primary trait plus the first few of the secondary
// trait, deduplicated. An empty or unrecognized code falls back to a
// generic remote search.
func KeywordsForCode(code string) []string {
	if code == "" {
		return []string{"Remote"}
	}

	var keywords []string
	if primary, ok := riasec.CategoryFromLetter(code[:1]); ok {
		keywords = append(keywords, categoryKeywords[primary]...)
	}
	if len(code) > 1 {
		if secondary, ok := riasec.CategoryFromLetter(code[1:2]); ok {
			secondaryJobs := categoryKeywords[secondary]
			if len(secondaryJobs) > secondaryKeywordCount {
				secondaryJobs = secondaryJobs[:secondaryKeywordCount]
			}
			keywords = append(keywords, secondaryJobs...)
		}
	}
	if len(keywords) == 0 {
		return []string{"Remote"}
	}

	seen := make(map[string]bool, len(keywords))
	out := keywords[:0]
	for _, k := range keywords {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
