package analysis

import (
	"regexp"
	"strings"
)

var controlRe = regexp.MustCompile(`[\x00-\x1F\x7F-\x9F]`)

// Normalize collapses whitespace runs to a single space, drops control characters and trims.
func Normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = controlRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
