package contact

import (
	"strings"
	"unicode/utf8"
)

// Role is the part a candidate-pool line plays in the record.
type Role int

const (
	Unclassified Role = iota
	Company
	JobTitle
	Name
)

func (r Role) String() string {
	switch r {
	case Company:
		return "company"
	case JobTitle:
		return "jobTitle"
	case Name:
		return "name"
	default:
		return "unclassified"
	}
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a role name; unknown names decode as Unclassified.
func (r *Role) UnmarshalText(b []byte) error {
	switch string(b) {
	case "company":
		*r = Company
	case "jobTitle":
		*r = JobTitle
	case "name":
		*r = Name
	default:
		*r = Unclassified
	}
	return nil
}

// Candidate is a candidate-pool line together with the role it was given.
type Candidate struct {
	Line
	Role Role `json:"role"`
}

// IsCompanyLine reports whether s ends in a corporate suffix (Inc, LLC, Ltd,
// Corp, Co) and is short enough to be a company name.
func IsCompanyLine(s string) bool {
	return utf8.RuneCountInString(s) < maxCompanyLen && companySuffixPattern.MatchString(s)
}

// IsJobTitleLine reports whether s contains a job-title keyword and is short
// enough to be a title.
func IsJobTitleLine(s string) bool {
	return utf8.RuneCountInString(s) < maxJobTitleLen && hasJobTitleKeyword(s)
}

// IsNameLine reports whether s is shaped like a personal name: two to four
// capitalised words, no digits, and nothing that reads as a company, a title
// or an industry.
func IsNameLine(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minNameLen || n > maxNameLen {
		return false
	}
	if companySuffixPattern.MatchString(s) || hasJobTitleKeyword(s) {
		return false
	}
	if digitPattern.MatchString(s) || nameBlockPattern.MatchString(s) {
		return false
	}
	words := strings.Fields(s)
	if len(words) < minNameWords || len(words) > maxNameWords {
		return false
	}
	for _, w := range words {
		if _, ok := nonNameWords[strings.ToLower(w)]; ok {
			return false
		}
	}
	for _, w := range words {
		if !nameWordPattern.MatchString(w) {
			return false
		}
	}
	return true
}

func hasJobTitleKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classify assigns roles over the pool in a fixed order: company, job
// title, then name. Each detector takes the first qualifying line. Lines are
// never removed from the pool; a later detector only skips lines whose text
// equals a value already taken.
func classify(pool []Line) []Candidate {
	cands := make([]Candidate, len(pool))
	for i, l := range pool {
		cands[i] = Candidate{Line: l}
	}

	company := assign(cands, Company, IsCompanyLine)
	title := assign(cands, JobTitle, func(s string) bool {
		return s != company && IsJobTitleLine(s)
	})
	assign(cands, Name, func(s string) bool {
		return s != company && s != title && IsNameLine(s)
	})
	return cands
}

// assign tags the first candidate accepted by match and returns its
// content, or "" when none qualifies.
func assign(cands []Candidate, role Role, match func(string) bool) string {
	for i := range cands {
		if match(cands[i].Content) {
			cands[i].Role = role
			return cands[i].Content
		}
	}
	return ""
}
