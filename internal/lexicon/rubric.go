package lexicon

// Section names of the resume rubric.
const (
	SectionContact    = "contact"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// Section describes one rubric entry. Weight is informational and is not part of the overall score.
type Section struct {
	Name       string
	Indicators []string
	Required   bool
	Weight     float64
}

var rubric = []Section{
	{
		Name:       SectionContact,
		Indicators: []string{"email", "phone", "address", "linkedin", "github", "@", "tel:", "mailto:"},
		Required:   true,
		Weight:     0.15,
	},
	{
		Name:       SectionSummary,
		Indicators: []string{"summary", "objective", "profile", "about", "overview"},
		Required:   true,
		Weight:     0.10,
	},
	{
		Name:       SectionExperience,
		Indicators: []string{"experience", "work history", "employment", "career", "professional"},
		Required:   true,
		Weight:     0.35,
	},
	{
		Name:       SectionEducation,
		Indicators: []string{"education", "degree", "university", "college", "school", "certification"},
		Required:   true,
		Weight:     0.20,
	},
	{
		Name:       SectionSkills,
		Indicators: []string{"skills", "technical skills", "competencies", "expertise", "technologies"},
		Required:   true,
		Weight:     0.15,
	},
	{
		Name:       SectionProjects,
		Indicators: []string{"projects", "portfolio", "work samples", "achievements"},
		Required:   false,
		Weight:     0.05,
	},
}

// Rubric returns the six rubric sections in their fixed order.
func Rubric() []Section {
	out := make([]Section, len(rubric))
	for i, s := range rubric {
		s.Indicators = append([]string(nil), s.Indicators...)
		out[i] = s
	}
	return out
}

var (
	contextWords     = []string{"experience", "expert", "proficient", "skilled", "years"}
	actionVerbs      = []string{"achieved", "improved", "increased", "developed", "created", "managed", "led", "implemented", "designed", "optimized", "reduced", "streamlined", "delivered"}
	coreActionVerbs  = []string{"achieved", "improved", "increased", "developed", "managed", "led"}
	leadershipVerbs  = []string{"led", "managed", "directed", "coordinated", "supervised"}
	summaryMarkers   = []string{"summary", "objective", "profile"}
	weakPhrases      = []string{"responsible for", "duties included", "worked on"}
	modernPractices  = []string{"agile", "scrum", "devops", "cloud", "digital transformation", "automation"}
	personalPronouns = []string{"i", "me", "my", "myself"}
)

// ContextWords qualify a nearby skill mention and raise its confidence.
func ContextWords() []string { return append([]string(nil), contextWords...) }

// ActionVerbs is the content-score verb list.
func ActionVerbs() []string { return append([]string(nil), actionVerbs...) }

// CoreActionVerbs is the shorter list checked by the "use action words" recommendation.
func CoreActionVerbs() []string { return append([]string(nil), coreActionVerbs...) }

// LeadershipVerbs signal leadership experience.
func LeadershipVerbs() []string { return append([]string(nil), leadershipVerbs...) }

// SummaryMarkers signal a professional summary.
func SummaryMarkers() []string { return append([]string(nil), summaryMarkers...) }

// WeakPhrases are passive phrasings worth replacing with action verbs.
func WeakPhrases() []string { return append([]string(nil), weakPhrases...) }

// ModernPractices are methodology terms counted by the industry alignment assessment.
func ModernPractices() []string { return append([]string(nil), modernPractices...) }

// PersonalPronouns are matched as whole words by the content score.
func PersonalPronouns() []string { return append([]string(nil), personalPronouns...) }
