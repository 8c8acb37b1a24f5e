package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeLadder(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A+"}, {90, "A+"}, {89, "A"}, {85, "A"}, {84, "A-"}, {80, "A-"},
		{79, "B+"}, {75, "B+"}, {74, "B"}, {70, "B"}, {69, "B-"}, {65, "B-"},
		{64, "C+"}, {60, "C+"}, {59, "C"}, {55, "C"}, {54, "C-"}, {50, "C-"},
		{49, "D"}, {0, "D"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %d", tt.score)
	}
}

func TestClassifyDeadZone(t *testing.T) {
	strengths, improvements := classify(ScoreBreakdown{Content: 85, Structure: 75, Keywords: 65, Completeness: 40})

	assert.Equal(t, []Strength{{
		Area:        "Content",
		Score:       85,
		Description: "Excellent use of action words and quantified achievements",
	}}, strengths)

	assert.Len(t, improvements, 2)
	assert.Equal(t, "Keywords", improvements[0].Area)
	assert.Equal(t, PriorityMedium, improvements[0].Priority)
	assert.Equal(t, "Completeness", improvements[1].Area)
	assert.Equal(t, PriorityHigh, improvements[1].Priority)
}

func TestClassifyBoundaries(t *testing.T) {
	strengths, improvements := classify(ScoreBreakdown{Content: 80, Structure: 79, Keywords: 70, Completeness: 50})

	assert.Len(t, strengths, 1)
	assert.Equal(t, "Content", strengths[0].Area)

	assert.Len(t, improvements, 1)
	assert.Equal(t, "Completeness", improvements[0].Area)
	assert.Equal(t, PriorityMedium, improvements[0].Priority)
}

func TestContentScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty text", text: "", want: 30},
		{name: "personal pronouns cost two points each", text: "I my me myself", want: 22},
		{name: "pronouns are whole words", text: "mine item", want: 30},
		{name: "long filler", text: strings.TrimSpace(strings.Repeat("lorem ", 1200)), want: 35},
		{name: "verbs and numbers", text: "Led and managed a team. Increased revenue 25% and saved $400", want: 49},
		{name: "quantifier bonus is capped", text: "1% 2% 3% 4% 5% 6% 7%", want: 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentScore(tt.text))
		})
	}
}

func TestStructureScore(t *testing.T) {
	assert.Equal(t, 0, StructureScore(""))

	text := "Email: a@b.com\nSummary. Experience. Education. Skills. Projects."
	assert.Equal(t, 56, StructureScore(text))

	bullets := "- one\n- two\n- three\n- four\n- five\n- six"
	// no sections, 20 for bullets, no sentence starts uppercase, 6 lines
	assert.Equal(t, 26, StructureScore(bullets))
}

func TestKeywordScoreCountsDistinctTerms(t *testing.T) {
	assert.Equal(t, 0, KeywordScore(""))
	assert.Equal(t, 2, KeywordScore("python"))
	// "react" is listed twice in the technical lexicon but scores once; "r" matches too.
	assert.Equal(t, 4, KeywordScore("react"))
	assert.Equal(t, 1, KeywordScore("coaching"))
}

func TestKeywordScoreIsCapped(t *testing.T) {
	var b strings.Builder
	for _, term := range []string{
		"javascript", "python", "typescript", "kotlin", "swift", "scala", "matlab", "mysql", "postgresql",
		"mongodb", "redis", "docker", "kubernetes", "terraform", "ansible", "jenkins", "github", "jira",
		"figma", "sketch", "photoshop", "intellij", "eclipse", "django", "flask", "laravel", "svelte",
		"fastapi", "nestjs", "gatsby", "meteor", "neo4j", "firebase", "supabase", "cassandra", "dynamodb",
		"leadership", "mentoring", "coaching", "creativity", "innovation", "software", "algorithm",
		"backend", "frontend", "devops", "agile", "scrum", "campaign", "audit", "clinical",
	} {
		b.WriteString(term)
		b.WriteString(" ")
	}

	assert.Equal(t, 100, KeywordScore(b.String()))
}

func TestCompletenessScore(t *testing.T) {
	assert.Equal(t, 0, CompletenessScore(""))
	// "@" is a contact indicator as well as the email heuristic.
	assert.Equal(t, 40, CompletenessScore("john@x.com 555-123-4567"))
	assert.Equal(t, 10, CompletenessScore("see projects"))
	assert.Equal(t, 100, CompletenessScore("email summary experience education skills projects a@b.c 555.123.4567"))
}

func TestScoreCombinesWeightedSubScores(t *testing.T) {
	text := "John Doe john@x.com (555) 123-4567 EXPERIENCE Led team of 5. Increased sales by 25%. SKILLS Python, React, Leadership"
	overall := Score(text)

	assert.Equal(t, ScoreBreakdown{Content: 41, Structure: 36, Keywords: 7, Completeness: 70}, overall.Breakdown)
	assert.Equal(t, 37, overall.Score)
	assert.Equal(t, "D", overall.Grade)
	assert.Empty(t, overall.Strengths)

	areas := make([]string, 0, len(overall.Improvements))
	for _, imp := range overall.Improvements {
		areas = append(areas, imp.Area)
		assert.Equal(t, PriorityHigh, imp.Priority)
	}
	// completeness of 70 is acceptable and lands in neither list
	assert.Equal(t, []string{"Content", "Structure", "Keywords"}, areas)
}
