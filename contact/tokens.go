package contact

import "strings"

// Tokens holds the fixed-format values found anywhere in the raw text.
type Tokens struct {
	Email   string
	Phone   string
	Website string
}

// ExtractTokens runs the email, phone and website scans over the untouched
// raw text. The scans are independent; a run of digits inside a URL may
// still be reported as a phone number.
func ExtractTokens(raw string) Tokens {
	return Tokens{
		Email:   findEmail(raw),
		Phone:   findPhone(raw),
		Website: findWebsite(raw),
	}
}

func findEmail(s string) string {
	return strings.TrimSpace(emailPattern.FindString(s))
}

// findPhone returns the leftmost phone run that holds at least one digit,
// with whitespace collapsed. Runs made only of spaces and punctuation are
// skipped.
func findPhone(s string) string {
	for _, m := range phonePattern.FindAllString(s, -1) {
		if !digitPattern.MatchString(m) {
			continue
		}
		return strings.Join(strings.Fields(m), " ")
	}
	return ""
}

// findWebsite returns the leftmost website match that is not part of an
// email address: candidates overlapping an email match, or glued to an "@"
// on either side, are skipped.
func findWebsite(s string) string {
	emails := emailPattern.FindAllStringIndex(s, -1)
	for _, loc := range websitePattern.FindAllStringIndex(s, -1) {
		start, end := loc[0], loc[1]
		if overlapsAny(start, end, emails) {
			continue
		}
		if start > 0 && s[start-1] == '@' {
			continue
		}
		if end < len(s) && s[end] == '@' {
			continue
		}
		return strings.TrimSpace(s[start:end])
	}
	return ""
}

func overlapsAny(start, end int, spans [][]int) bool {
	for _, sp := range spans {
		if start < sp[1] && sp[0] < end {
			return true
		}
	}
	return false
}
