package analysis

import (
	"regexp"
	"sync"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

const (
	occurrenceWeight   = 20
	occurrenceCap      = 80
	contextBonus       = 20
	maxSkillConfidence = 100
)

// ExtractSkills scans text against the technical, soft and industry lexicons.
// A term listed under two categories is reported once per category.
func ExtractSkills(text string) SkillsSummary {
	summary := SkillsSummary{
		Technical: matchTable(text, lexicon.TechnicalSkills()),
		Soft:      matchTable(text, lexicon.SoftSkills()),
		Industry:  matchTable(text, lexicon.IndustrySkills()),
	}
	summary.Total = len(summary.Technical) + len(summary.Soft) + len(summary.Industry)
	return summary
}

func matchTable(text string, table lexicon.Table) []SkillMatch {
	matches := make([]SkillMatch, 0)
	for _, category := range table {
		for _, term := range category.Terms {
			if !ContainsLiteral(text, term) {
				continue
			}
			matches = append(matches, SkillMatch{
				Name:       term,
				Category:   category.Name,
				Confidence: SkillConfidence(text, term),
			})
		}
	}
	return matches
}

// SkillConfidence rates a skill mention: 20 points per occurrence up to 80, plus 20 when
// the skill sits directly next to a qualifier such as "expert" or "years".
func SkillConfidence(text, skill string) int {
	confidence := CountLiteral(text, skill) * occurrenceWeight
	if confidence > occurrenceCap {
		confidence = occurrenceCap
	}
	if contextPattern(skill).MatchString(text) {
		confidence += contextBonus
	}
	return clamp(confidence, 0, maxSkillConfidence)
}

var contextCache sync.Map

func contextPattern(skill string) *regexp.Regexp {
	if re, ok := contextCache.Load(skill); ok {
		return re.(*regexp.Regexp)
	}

	quoted := regexp.QuoteMeta(skill)
	expr := `(?i)`
	for i, word := range lexicon.ContextWords() {
		if i > 0 {
			expr += "|"
		}
		expr += quoted + SpaceClass + "+" + word + "|" + word + SpaceClass + "+" + quoted
	}

	re := regexp.MustCompile(expr)
	actual, _ := contextCache.LoadOrStore(skill, re)
	return actual.(*regexp.Regexp)
}
