package contact

import "regexp"

// Structured-token patterns. They are applied to the raw text as a whole and
// to individual lines.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Only horizontal whitespace belongs to a phone run; a number never
	// continues onto the next line.
	phonePattern = regexp.MustCompile(`\+?[0-9 \t().\-]{10,}`)

	websitePattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9.\-]+\.[a-z]{2,}(?:/\S*)?`)
)

var (
	companySuffixPattern = regexp.MustCompile(`(?i)\b(?:inc\.?|llc|ltd\.?|corp\.?|co\.?)\s*$`)

	streetSuffixPattern = regexp.MustCompile(`(?i)\b(?:st|ave|rd|blvd|street|avenue|road|lane|dr|court)\b\.?`)

	// TitleCase word, capitalised initial with optional period, or acronym.
	nameWordPattern = regexp.MustCompile(`^(?:[A-Z][a-z]*\.?|[A-Z]{2,})$`)

	digitPattern = regexp.MustCompile(`[0-9]`)

	nameBlockPattern = regexp.MustCompile(`(?i)@|\.com|inc\.|llc|ltd`)
)

// jobTitleKeywords are matched as lower-case substrings.
var jobTitleKeywords = []string{
	"manager", "director", "ceo", "cfo", "president", "vp", "vice president",
	"engineer", "analyst", "specialist", "coordinator", "consultant", "agent",
	"representative", "executive", "officer", "head", "lead", "senior",
	"junior", "assistant",
}

// industryWords are slogan and sector words printed on cards that never form
// part of a personal name.
var industryWords = []string{
	"real", "estate", "technology", "healthcare", "finance", "marketing",
	"sales", "consulting", "services", "solutions",
}

var nonNameWords = func() map[string]struct{} {
	words := append([]string{
		"inc", "llc", "ltd", "corp", "group", "international", "global",
		"the", "and", "of",
	}, industryWords...)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

const (
	minPoolLineLen = 3
	minAddressLen  = 12
	maxCompanyLen  = 60
	maxJobTitleLen = 50
	minNameLen     = 4
	maxNameLen     = 40
	minNameWords   = 2
	maxNameWords   = 4
)
