package contact

import "strings"

// DetectAddress returns the first line that looks like a street address:
// at least twelve runes, a digit, a comma or street suffix, and no email or
// phone number on it.
func DetectAddress(lines []Line) (Line, bool) {
	for _, l := range lines {
		if isAddress(l) {
			return l, true
		}
	}
	return Line{}, false
}

func isAddress(l Line) bool {
	if l.Len() < minAddressLen {
		return false
	}
	s := l.Content
	if !digitPattern.MatchString(s) {
		return false
	}
	if !strings.Contains(s, ",") && !streetSuffixPattern.MatchString(s) {
		return false
	}
	return findEmail(s) == "" && findPhone(s) == ""
}
