package analysis

import (
	"math"
	"strings"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

// Sub-score weights of the overall score.
const (
	ContentWeight      = 0.30
	StructureWeight    = 0.25
	KeywordsWeight     = 0.25
	CompletenessWeight = 0.20
)

// Sub-scores at or above StrengthThreshold are strengths, those below ImprovementThreshold
// are improvements. Scores in between are acceptable and reported in neither list.
const (
	StrengthThreshold     = 80
	ImprovementThreshold  = 70
	highPriorityThreshold = 50
)

type area struct {
	key         string
	title       string
	strength    string
	improvement string
}

var areas = []area{
	{
		key:         "content",
		title:       "Content",
		strength:    "Excellent use of action words and quantified achievements",
		improvement: "Consider adding more specific achievements and action words",
	},
	{
		key:         "structure",
		title:       "Structure",
		strength:    "Well-organized with clear sections and consistent formatting",
		improvement: "Improve organization and formatting consistency",
	},
	{
		key:         "keywords",
		title:       "Keywords",
		strength:    "Strong inclusion of relevant industry keywords and skills",
		improvement: "Include more relevant skills and industry-specific terms",
	},
	{
		key:         "completeness",
		title:       "Completeness",
		strength:    "Contains all essential resume sections and information",
		improvement: "Add missing resume sections and contact information",
	},
}

// Score computes the four sub-scores straight from the text and combines them.
func Score(text string) OverallAssessment {
	breakdown := ScoreBreakdown{
		Content:      ContentScore(text),
		Structure:    StructureScore(text),
		Keywords:     KeywordScore(text),
		Completeness: CompletenessScore(text),
	}

	total := float64(breakdown.Content)*ContentWeight +
		float64(breakdown.Structure)*StructureWeight +
		float64(breakdown.Keywords)*KeywordsWeight +
		float64(breakdown.Completeness)*CompletenessWeight
	score := clamp(int(math.Round(total)), 0, 100)

	strengths, improvements := classify(breakdown)

	return OverallAssessment{
		Score:        score,
		Grade:        Grade(score),
		Breakdown:    breakdown,
		Strengths:    strengths,
		Improvements: improvements,
	}
}

// Grade maps an overall score onto the letter ladder.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	default:
		return "D"
	}
}

func (b ScoreBreakdown) value(key string) int {
	switch key {
	case "content":
		return b.Content
	case "structure":
		return b.Structure
	case "keywords":
		return b.Keywords
	case "completeness":
		return b.Completeness
	}
	return 0
}

func classify(b ScoreBreakdown) ([]Strength, []Improvement) {
	strengths := make([]Strength, 0)
	improvements := make([]Improvement, 0)

	for _, a := range areas {
		score := b.value(a.key)
		switch {
		case score >= StrengthThreshold:
			strengths = append(strengths, Strength{Area: a.title, Score: score, Description: a.strength})
		case score < ImprovementThreshold:
			priority := PriorityMedium
			if score < highPriorityThreshold {
				priority = PriorityHigh
			}
			improvements = append(improvements, Improvement{
				Area:        a.title,
				Score:       score,
				Description: a.improvement,
				Priority:    priority,
			})
		}
	}

	return strengths, improvements
}

// ContentScore rewards a sensible length, action verbs, quantified results and an impersonal tone.
func ContentScore(text string) int {
	lower := strings.ToLower(text)
	score := 0

	words := len(splitWords(lower))
	switch {
	case words >= 400 && words <= 800:
		score += 25
	case words >= 300 && words < 400:
		score += 20
	case words >= 200 && words < 300:
		score += 15
	case words < 200:
		score += 5
	default:
		score += 10
	}

	score += min(countContained(lower, lexicon.ActionVerbs())*3, 25)
	score += min(len(quantifierRe.FindAllString(text, -1))*5, 25)
	score += max(0, 25-len(pronounRe.FindAllString(text, -1))*2)

	return clamp(score, 0, 100)
}

// StructureScore rewards rubric coverage, bullet formatting, capitalized sentences and line count.
func StructureScore(text string) int {
	lower := strings.ToLower(text)
	score := 0.0

	rubric := lexicon.Rubric()
	found := 0
	for _, section := range rubric {
		if containsAny(lower, section.Indicators) {
			found++
		}
	}
	score += float64(found) / float64(len(rubric)) * 40

	if len(bulletRe.FindAllString(text, -1)) > 5 {
		score += 20
	}

	sentences := sentenceRe.Split(text, -1)
	capitalized := 0
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s != "" && upperStartRe.MatchString(s) {
			capitalized++
		}
	}
	score += float64(capitalized) / float64(max(len(sentences), 1)) * 20

	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	score += float64(min(lines, 20))

	return clamp(int(math.Round(score)), 0, 100)
}

// KeywordScore counts distinct technical, soft and industry-context terms.
func KeywordScore(text string) int {
	lower := strings.ToLower(text)
	score := 0.0

	for _, term := range lexicon.TechnicalSkills().Distinct() {
		if ContainsLiteral(text, term) {
			score += 2
		}
	}
	for _, term := range lexicon.SoftSkills().Distinct() {
		if ContainsLiteral(text, term) {
			score++
		}
	}
	for _, term := range lexicon.IndustryKeywords().Distinct() {
		if strings.Contains(lower, term) {
			score += 1.5
		}
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// CompletenessScore rewards present rubric sections and contact details.
func CompletenessScore(text string) int {
	lower := strings.ToLower(text)
	score := 0

	for _, section := range lexicon.Rubric() {
		if !containsAny(lower, section.Indicators) {
			continue
		}
		if section.Required {
			score += 20
		} else {
			score += 10
		}
	}

	if strings.Contains(text, "@") {
		score += 10
	}
	if phoneRe.MatchString(text) {
		score += 10
	}

	return clamp(score, 0, 100)
}
