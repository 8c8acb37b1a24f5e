package analysis

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

const (
	minWordCount  = 300
	maxWordCount  = 1000
	minSkillCount = 5
)

// Input is what every recommendation rule sees.
type Input struct {
	Text      string
	Lower     string
	WordCount int
	Skills    SkillsSummary
}

// NewInput prepares rule input from text and an already extracted skills summary.
func NewInput(text string, skills SkillsSummary) Input {
	return Input{
		Text:      text,
		Lower:     strings.ToLower(text),
		WordCount: WordCount(text),
		Skills:    skills,
	}
}

// Rule inspects the input and emits at most one recommendation.
type Rule interface {
	Name() string
	Check(in Input) (Recommendation, bool)
}

type ruleFunc struct {
	name  string
	check func(in Input) (Recommendation, bool)
}

func (r ruleFunc) Name() string                          { return r.name }
func (r ruleFunc) Check(in Input) (Recommendation, bool) { return r.check(in) }

// DefaultRules returns the built-in rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		ruleFunc{name: "content_length", check: checkContentLength},
		ruleFunc{name: "skills_count", check: checkSkillsCount},
		ruleFunc{name: "quantified_impact", check: checkQuantifiedImpact},
		ruleFunc{name: "action_words", check: checkActionWords},
		ruleFunc{name: "email", check: checkEmail},
		ruleFunc{name: "summary", check: checkSummary},
	}
}

// Recommend runs the default rules over text.
func Recommend(text string) []Recommendation {
	return RunRules(NewInput(text, ExtractSkills(text)), DefaultRules(), nil)
}

// RunRules evaluates rules in order and returns their output sorted by descending priority.
// Recommendations of equal priority keep rule order.
func RunRules(in Input, rules []Rule, logger *zap.Logger) []Recommendation {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Recommendation, 0, len(rules))
	for _, rule := range rules {
		rec, ok := rule.Check(in)
		if !ok {
			continue
		}
		logger.Debug("recommendation rule fired",
			zap.String("rule", rule.Name()),
			zap.String("priority", rec.Priority),
		)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return PriorityRank(out[i].Priority) > PriorityRank(out[j].Priority)
	})

	return out
}

// PriorityRank orders priorities: critical=4, high=3, medium=2, low=1, unknown=0.
func PriorityRank(priority string) int {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func checkContentLength(in Input) (Recommendation, bool) {
	switch {
	case in.WordCount < minWordCount:
		return Recommendation{
			Type:        "content",
			Priority:    PriorityHigh,
			Title:       "Expand Resume Content",
			Description: "Your resume is too brief. Add more detail about your achievements and responsibilities.",
			Action:      "Add 2-3 bullet points to each job description",
		}, true
	case in.WordCount > maxWordCount:
		return Recommendation{
			Type:        "content",
			Priority:    PriorityMedium,
			Title:       "Condense Resume Content",
			Description: "Your resume is quite lengthy. Focus on the most relevant and impactful information.",
			Action:      "Remove less relevant details and focus on key achievements",
		}, true
	}
	return Recommendation{}, false
}

func checkSkillsCount(in Input) (Recommendation, bool) {
	if in.Skills.Total >= minSkillCount {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:        "skills",
		Priority:    PriorityHigh,
		Title:       "Add More Skills",
		Description: "Include more technical and soft skills relevant to your field.",
		Action:      "Create a dedicated skills section with 8-12 relevant skills",
	}, true
}

func checkQuantifiedImpact(in Input) (Recommendation, bool) {
	if HasImpactMetric(in.Text) {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:        "impact",
		Priority:    PriorityHigh,
		Title:       "Quantify Achievements",
		Description: "Add numbers, percentages, and metrics to demonstrate your impact.",
		Action:      `Include specific results like "Increased sales by 25%" or "Managed team of 8"`,
	}, true
}

func checkActionWords(in Input) (Recommendation, bool) {
	if containsAny(in.Lower, lexicon.CoreActionVerbs()) {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:        "language",
		Priority:    PriorityMedium,
		Title:       "Use Action Words",
		Description: "Start bullet points with strong action verbs.",
		Action:      `Use words like "achieved", "improved", "developed", "managed"`,
	}, true
}

func checkEmail(in Input) (Recommendation, bool) {
	if strings.Contains(in.Text, "@") {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:        "contact",
		Priority:    PriorityCritical,
		Title:       "Add Email Address",
		Description: "Your resume is missing an email address.",
		Action:      "Include a professional email address in the contact section",
	}, true
}

func checkSummary(in Input) (Recommendation, bool) {
	if containsAny(in.Lower, lexicon.SummaryMarkers()) {
		return Recommendation{}, false
	}
	return Recommendation{
		Type:        "structure",
		Priority:    PriorityMedium,
		Title:       "Add Professional Summary",
		Description: "Include a brief professional summary at the top of your resume.",
		Action:      "Write 2-3 sentences highlighting your key qualifications",
	}, true
}
