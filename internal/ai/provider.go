package ai

import (
	"context"
	"errors"

	"github.com/spigell/resume-analyzer/internal/analysis"
)

// Sources reported in Insights.Source.
const (
	SourceLocal  = "enhanced_local"
	SourceGemini = "gemini"
)

var (
	// ErrProviderUnavailable covers a missing provider as well as transport failures and timeouts.
	ErrProviderUnavailable = errors.New("insight provider unavailable")
	// ErrMalformedResponse is returned when a provider reply is not the expected JSON object.
	ErrMalformedResponse = errors.New("malformed insight provider response")
)

// Insights is the narrative layer attached to an analysis.
type Insights struct {
	Insights            []string `json:"insights"`
	CareerPositioning   string   `json:"careerPositioning"`
	ContentEnhancements []string `json:"contentEnhancements"`
	IndustryAlignment   string   `json:"industryAlignment"`
	CompetitiveEdge     string   `json:"competitiveEdge"`
	AIScore             int      `json:"aiScore"`
	Confidence          string   `json:"confidence"`
	Source              string   `json:"source"`
}

// Summary is the part of a base analysis shared with a remote provider.
type Summary struct {
	Score        int
	Grade        string
	SkillsTotal  int
	Strengths    []string
	Improvements []string
}

// NewSummary extracts a Summary from a base result.
func NewSummary(r *analysis.Result) Summary {
	if r == nil {
		return Summary{}
	}

	s := Summary{
		Score:        r.Overall.Score,
		Grade:        r.Overall.Grade,
		SkillsTotal:  r.Skills.Total,
		Strengths:    make([]string, 0, len(r.Overall.Strengths)),
		Improvements: make([]string, 0, len(r.Overall.Improvements)),
	}
	for _, st := range r.Overall.Strengths {
		s.Strengths = append(s.Strengths, st.Area)
	}
	for _, imp := range r.Overall.Improvements {
		s.Improvements = append(s.Improvements, imp.Area)
	}
	return s
}

// Provider produces insights for a resume text and its base assessment.
type Provider interface {
	Name() string
	Insights(ctx context.Context, text string, summary Summary) (*Insights, error)
}
