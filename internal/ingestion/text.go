package ingestion

import (
	"regexp"
	"strings"
)

var (
	lineEndings  = regexp.MustCompile(`\r\n|\r|\n`)
	whitespace   = regexp.MustCompile(`\s+`)
	nonPrintable = regexp.MustCompile(`[^\x09\x0A\x0D\x20-\x7E]`)
)

// CleanText normalizes extracted document text: line endings and whitespace
// runs collapse to single spaces, bytes outside the safe ASCII+whitespace
// range become spaces, and the ends are trimmed. Emails, phone numbers and
// punctuation survive.
func CleanText(text string) string {
	text = lineEndings.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	text = nonPrintable.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
