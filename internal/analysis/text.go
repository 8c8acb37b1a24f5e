package analysis

import (
	"regexp"
	"strings"
	"sync"
)

// SpaceClass matches one whitespace rune: ASCII whitespace, the vertical tab, the Unicode
// space and line separators (NBSP among them) and the byte order mark.
const SpaceClass = `[\s\x0B\p{Z}\x{FEFF}]`

var (
	whitespaceRe = regexp.MustCompile(SpaceClass + `+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
	bulletRe     = regexp.MustCompile(`[•·▪▫-]` + SpaceClass)
	pronounRe    = regexp.MustCompile(`(?i)\b(?:i|me|my|myself)\b`)
	phoneRe      = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	upperStartRe = regexp.MustCompile(`^[A-Z]`)

	// quantifierRe matches percentages, dollar amounts and million/thousand/k suffixed numbers.
	quantifierRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+` + SpaceClass + `*(?:million|thousand|k\b)`)
	// impactRe is the case-sensitive form the recommendation rule uses: "5K" or "2 Million"
	// do not count as a quantified result there.
	impactRe = regexp.MustCompile(`\d+%|\$\d+|\d+` + SpaceClass + `*(?:million|thousand|k\b)`)
)

// splitWords splits on whitespace runs the way the word count has always been computed:
// leading or trailing whitespace yields an empty token and empty text counts as one word.
func splitWords(text string) []string {
	return whitespaceRe.Split(text, -1)
}

// WordCount returns the number of whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(splitWords(text))
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func countContained(lower string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			n++
		}
	}
	return n
}

// HasQuantifier reports whether the text contains a measurable result, ignoring case.
func HasQuantifier(text string) bool {
	return quantifierRe.MatchString(text)
}

// HasImpactMetric is the case-sensitive variant of HasQuantifier.
func HasImpactMetric(text string) bool {
	return impactRe.MatchString(text)
}

var literalCache sync.Map

// literalPattern compiles term as a case-insensitive literal. Metacharacters such as
// the pluses in "c++" or the dot in "node.js" are matched verbatim.
func literalPattern(term string) *regexp.Regexp {
	if re, ok := literalCache.Load(term); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	actual, _ := literalCache.LoadOrStore(term, re)
	return actual.(*regexp.Regexp)
}

// ContainsLiteral reports whether term occurs in text, ignoring case.
func ContainsLiteral(text, term string) bool {
	return literalPattern(term).MatchString(text)
}

// CountLiteral counts non-overlapping case-insensitive occurrences of term.
func CountLiteral(text, term string) int {
	return len(literalPattern(term).FindAllStringIndex(text, -1))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
