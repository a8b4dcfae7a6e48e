package ocr

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\f", "")

// CleanText prepares engine output for parsing: compatibility forms such as
// ligatures, full-width characters and non-breaking spaces are folded with
// NFKC, line breaks become "\n", and page-break form feeds are dropped.
func CleanText(s string) string {
	return lineBreaks.Replace(norm.NFKC.String(s))
}
