package roles

// DefaultPartialTerms lists words that are common in job titles but read as
// incomplete role names on their own ("senior", "data"). A cluster whose top
// term is one of these is labelled with its top two terms instead.
//
// Edit this table (or set partial_role_terms in config) when titles come from
// a different industry.
var DefaultPartialTerms = []string{
	// Tech
	"data", "software", "systems", "cloud", "web", "it",
	// Business and finance
	"financial", "business", "investment", "finance", "account",
	// Management and admin
	"senior", "junior", "lead", "project", "product", "program",
	// Academic and research
	"research", "teaching", "academic", "adjunct",
	// Creative
	"digital", "content", "creative", "marketing",
	// General prefixes
	"associate", "assistant", "staff", "principal",
}
