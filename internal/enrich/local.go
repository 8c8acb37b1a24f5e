package enrich

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/lexicon"
)

const (
	maxInsights     = 4
	maxEnhancements = 5

	manyTechnicalSkills = 8
	fewTechnicalSkills  = 5
	minSkillsForBreadth = 8
	minSoftForBalance   = 3
	structureTarget     = 70
	competitiveScore    = 75
	minModernPractices  = 3
)

var (
	measuredExperienceRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+` + analysis.SpaceClass + `*(?:years?|months?)`)
	quantifiedResultRe   = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|saved|increased|reduced|improved.*\d+`)
	strongMetricRe       = regexp.MustCompile(`(?i)\d+%.*improved|increased.*\d+%|reduced.*\d+%`)
)

// Local derives insights from the text and base result alone. It is deterministic and
// never fails; a signal that cannot be computed is left out.
func Local(text string, base *analysis.Result) ai.Insights {
	if base == nil {
		base = &analysis.Result{}
	}

	lower := strings.ToLower(text)
	industries := DetectIndustries(text)

	return ai.Insights{
		Insights:            localInsights(text, lower, industries, base),
		CareerPositioning:   careerPositioning(industries, base),
		ContentEnhancements: contentEnhancements(text, lower, base),
		IndustryAlignment:   industryAlignment(lower, industries),
		CompetitiveEdge:     competitiveEdge(text, base),
		AIScore:             LocalScore(base),
		Confidence:          "high",
		Source:              ai.SourceLocal,
	}
}

// DetectIndustries lists the focus industries with at least lexicon.MinIndustryHits
// distinct terms in text, in table order.
func DetectIndustries(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, industry := range lexicon.IndustryFocus() {
		hits := 0
		for _, term := range industry.Terms {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits >= lexicon.MinIndustryHits {
			detected = append(detected, industry.Name)
		}
	}
	return detected
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func localInsights(text, lower string, industries []string, base *analysis.Result) []string {
	insights := make([]string, 0, maxInsights)

	switch technical := len(base.Skills.Technical); {
	case technical > manyTechnicalSkills:
		insights = append(insights, "Strong technical skill diversity suggests versatility and adaptability to different technology stacks.")
	case technical < fewTechnicalSkills:
		insights = append(insights, "Limited technical skills listed - consider expanding to show broader capabilities.")
	}

	if measuredExperienceRe.MatchString(text) {
		insights = append(insights, "Good use of quantified achievements demonstrates measurable impact and results-oriented mindset.")
	} else {
		insights = append(insights, "Adding specific metrics and numbers would significantly strengthen impact statements.")
	}

	if len(industries) > 0 {
		insights = append(insights, fmt.Sprintf("Strong alignment with %s industry standards and terminology.", strings.Join(industries, " and ")))
	}

	if containsAny(lower, lexicon.LeadershipVerbs()) {
		insights = append(insights, "Leadership experience evident - valuable for senior and management-track positions.")
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func careerPositioning(industries []string, base *analysis.Result) string {
	var b strings.Builder
	b.WriteString("Based on your skill profile, ")

	if len(base.Skills.Technical) > len(base.Skills.Soft) {
		b.WriteString("you're well-positioned for technical roles and should emphasize your technical expertise. ")
	} else {
		b.WriteString("your balanced skill set suggests good fit for hybrid technical-business roles. ")
	}

	if slices.Contains(industries, "technology") {
		b.WriteString("Your tech industry alignment is strong - consider highlighting experience with modern development practices, cloud technologies, and agile methodologies.")
	} else {
		b.WriteString("Consider emphasizing transferable technical skills and any exposure to digital transformation initiatives.")
	}

	return b.String()
}

func contentEnhancements(text, lower string, base *analysis.Result) []string {
	var suggestions []string

	if base.Overall.Breakdown.Structure < structureTarget {
		suggestions = append(suggestions,
			"Restructure content with clear sections: Summary, Experience, Skills, Education, Projects",
			"Use consistent bullet point formatting and parallel structure",
		)
	}

	if base.Skills.Total < minSkillsForBreadth {
		suggestions = append(suggestions, "Expand skills section with both technical and soft skills relevant to your target role")
	}
	if len(base.Skills.Technical) > 0 && len(base.Skills.Soft) < minSoftForBalance {
		suggestions = append(suggestions, "Balance technical skills with soft skills like leadership, communication, and problem-solving")
	}

	if containsAny(lower, lexicon.WeakPhrases()) {
		suggestions = append(suggestions, "Replace weak phrases like 'responsible for' with strong action verbs like 'achieved', 'implemented', 'optimized'")
	}

	if !quantifiedResultRe.MatchString(text) {
		suggestions = append(suggestions, "Add specific metrics: 'Increased efficiency by 30%', 'Managed budget of $500K', 'Led team of 8 developers'")
	}

	if len(suggestions) > maxEnhancements {
		suggestions = suggestions[:maxEnhancements]
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestions
}

func industryAlignment(lower string, industries []string) string {
	var b strings.Builder
	b.WriteString("Your resume shows ")

	switch len(industries) {
	case 0:
		b.WriteString("limited industry-specific terminology. Consider adding relevant industry keywords and concepts.")
	case 1:
		fmt.Fprintf(&b, "strong alignment with the %s industry. Good use of relevant terminology and concepts.", industries[0])
	default:
		fmt.Fprintf(&b, "versatility across %s industries, which is valuable for cross-functional roles.", strings.Join(industries, " and "))
	}

	modern := 0
	for _, term := range lexicon.ModernPractices() {
		if strings.Contains(lower, term) {
			modern++
		}
	}
	if modern >= minModernPractices {
		b.WriteString(" Strong evidence of modern industry practices and methodologies.")
	}

	return b.String()
}

func competitiveEdge(text string, base *analysis.Result) string {
	var parts []string

	if len(base.Skills.Technical) > 5 && len(base.Skills.Soft) > 3 {
		parts = append(parts, "Strong combination of technical depth and soft skills creates competitive advantage.")
	}

	if strongMetricRe.MatchString(text) {
		parts = append(parts, "Quantified achievements demonstrate clear business impact.")
	}

	if base.Overall.Score < competitiveScore {
		improvements := base.Overall.Improvements
		if len(improvements) > 2 {
			improvements = improvements[:2]
		}
		areas := make([]string, 0, len(improvements))
		for _, imp := range improvements {
			areas = append(areas, strings.ToLower(imp.Area))
		}
		if len(areas) > 0 {
			parts = append(parts, "To strengthen competitive position, focus on: "+strings.Join(areas, " and ")+".")
		}
	} else {
		parts = append(parts, "Strong overall profile - focus on tailoring content for specific target roles.")
	}

	if len(parts) == 0 {
		return "Solid foundation with room for strategic positioning improvements."
	}
	return strings.Join(parts, " ")
}

// LocalScore adjusts the base overall score for skill breadth, balance and gaps.
func LocalScore(base *analysis.Result) int {
	if base == nil {
		return 0
	}
	score := base.Overall.Score

	if base.Skills.Total > 10 {
		score += 3
	}

	technical, soft := len(base.Skills.Technical), len(base.Skills.Soft)
	if technical > 0 && soft > 0 && abs(technical-soft) <= 3 {
		score += 2
	}

	if len(base.Overall.Improvements) > 3 {
		score -= 2
	}

	return min(max(score, 0), 100)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
