package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

func TestDetectSectionsReportsEveryRubricEntry(t *testing.T) {
	reports := DetectSections("")

	require.Len(t, reports, 6)
	for _, section := range lexicon.Rubric() {
		report, ok := reports[section.Name]
		require.True(t, ok, section.Name)

		assert.False(t, report.Present)
		assert.Zero(t, report.Score)
		assert.Equal(t, section.Required, report.Required)
		assert.Equal(t, []string{"Add a " + section.Name + " section to your resume"}, report.Suggestions)
	}
}

func TestDetectSectionsFindsIndicators(t *testing.T) {
	text := "John Doe john@x.com (555) 123-4567 EXPERIENCE Led team of 5. Increased sales by 25%. SKILLS Python, React, Leadership"
	reports := DetectSections(text)

	for _, name := range []string{lexicon.SectionContact, lexicon.SectionExperience, lexicon.SectionSkills} {
		assert.True(t, reports[name].Present, name)
		assert.Equal(t, 100, reports[name].Score, name)
		assert.Empty(t, reports[name].Suggestions, name)
	}

	assert.False(t, reports[lexicon.SectionSummary].Present)
	assert.False(t, reports[lexicon.SectionEducation].Present)
	assert.False(t, reports[lexicon.SectionProjects].Present)
	assert.False(t, reports[lexicon.SectionProjects].Required)
}
