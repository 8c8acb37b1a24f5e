package analysis

import "time"

// Priorities shared by recommendations and improvement areas.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// SkillMatch is one lexicon entry found in the text.
type SkillMatch struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Confidence int    `json:"confidence"`
}

// SkillsSummary groups matches by lexicon. Total is always the sum of the three list lengths.
type SkillsSummary struct {
	Technical []SkillMatch `json:"technical"`
	Soft      []SkillMatch `json:"soft"`
	Industry  []SkillMatch `json:"industry"`
	Total     int          `json:"total"`
}

// SectionReport is the rubric verdict for one section. A missing section is reported with Present=false.
type SectionReport struct {
	Name        string   `json:"name"`
	Present     bool     `json:"present"`
	Required    bool     `json:"required"`
	Weight      float64  `json:"weight"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// ScoreBreakdown holds the four sub-scores, each in [0,100].
type ScoreBreakdown struct {
	Content      int `json:"content"`
	Structure    int `json:"structure"`
	Keywords     int `json:"keywords"`
	Completeness int `json:"completeness"`
}

// Strength is a sub-score at or above StrengthThreshold.
type Strength struct {
	Area        string `json:"area"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Improvement is a sub-score below ImprovementThreshold.
type Improvement struct {
	Area        string `json:"area"`
	Score       int    `json:"score"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// OverallAssessment is the scorer output.
type OverallAssessment struct {
	Score        int            `json:"score"`
	Grade        string         `json:"grade"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Strengths    []Strength     `json:"strengths"`
	Improvements []Improvement  `json:"improvements"`
}

// Recommendation is an actionable suggestion produced by the rule engine.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Metadata describes the analyzed text and the run itself.
type Metadata struct {
	AnalysisID         string    `json:"analysisId"`
	WordCount          int       `json:"wordCount"`
	CharacterCount     int       `json:"characterCount"`
	EstimatedReadTime  int       `json:"estimatedReadTime"`
	AnalyzedAt         time.Time `json:"analyzedAt"`
	LexiconVersion     string    `json:"lexiconVersion"`
	FileName           string    `json:"fileName,omitempty"`
	TextLength         int       `json:"textLength,omitempty"`
	OriginalTextLength int       `json:"originalTextLength,omitempty"`
}

// Result is the base pipeline output.
type Result struct {
	Overall         OverallAssessment        `json:"overall"`
	Sections        map[string]SectionReport `json:"sections"`
	Skills          SkillsSummary            `json:"skills"`
	Recommendations []Recommendation         `json:"recommendations"`
	Metadata        Metadata                 `json:"metadata"`
}
