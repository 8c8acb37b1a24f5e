package analysis

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

// DetectSections reports every rubric section, present or not.
func DetectSections(text string) map[string]SectionReport {
	lower := strings.ToLower(text)
	rubric := lexicon.Rubric()

	reports := make(map[string]SectionReport, len(rubric))
	for _, section := range rubric {
		present := containsAny(lower, section.Indicators)

		report := SectionReport{
			Name:        section.Name,
			Present:     present,
			Required:    section.Required,
			Weight:      section.Weight,
			Suggestions: []string{},
		}
		if present {
			report.Score = 100
		} else {
			report.Suggestions = append(report.Suggestions, fmt.Sprintf("Add a %s section to your resume", section.Name))
		}

		reports[section.Name] = report
	}

	return reports
}
