package cmd

import (
	"fmt"
	"io"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/enrich"
)

// sectionOrder is the order sections are printed in.
var sectionOrder = []string{"contact", "summary", "experience", "education", "skills", "projects"}

func printReport(w io.Writer, r *enrich.Result) {
	name := r.Metadata.FileName
	if name == "" {
		name = "resume"
	}

	fmt.Fprintf(w, "Resume analysis: %s\n", name)
	fmt.Fprintln(w, scoreLine(r))

	b := r.Overall.Breakdown
	fmt.Fprintf(w, "Breakdown: content %d | structure %d | keywords %d | completeness %d\n",
		b.Content, b.Structure, b.Keywords, b.Completeness)
	fmt.Fprintf(w, "Words: %d, characters: %d, read time: %d min\n",
		r.Metadata.WordCount, r.Metadata.CharacterCount, r.Metadata.EstimatedReadTime)

	if len(r.Overall.Strengths) > 0 {
		fmt.Fprintln(w, "\nStrengths:")
		for _, s := range r.Overall.Strengths {
			fmt.Fprintf(w, "  + %s (%d): %s\n", s.Area, s.Score, s.Description)
		}
	}
	if len(r.Overall.Improvements) > 0 {
		fmt.Fprintln(w, "\nAreas to improve:")
		for _, imp := range r.Overall.Improvements {
			fmt.Fprintf(w, "  - [%s] %s (%d): %s\n", imp.Priority, imp.Area, imp.Score, imp.Description)
		}
	}

	printSections(w, r.Sections)
	fmt.Fprintf(w, "\nSkills found: %d (technical %d, soft %d, industry %d)\n",
		r.Skills.Total, len(r.Skills.Technical), len(r.Skills.Soft), len(r.Skills.Industry))

	printRecommendations(w, r.Recommendations)
	printInsights(w, r)
}

// scoreLine keeps the grade next to the score it was computed from. A remote provider
// may replace the score but never regrades it.
func scoreLine(r *enrich.Result) string {
	if r.Remote() && r.Outcome.BaseScore != r.Overall.Score {
		return fmt.Sprintf("Score: %d/100 (adjusted by %s; base score %d/100, grade %s)",
			r.Overall.Score, r.AI.Source, r.Outcome.BaseScore, r.Overall.Grade)
	}
	return fmt.Sprintf("Score: %d/100 (%s)", r.Overall.Score, r.Overall.Grade)
}

func printSections(w io.Writer, sections map[string]analysis.SectionReport) {
	fmt.Fprintln(w, "\nSections:")
	for _, name := range sectionOrder {
		s, ok := sections[name]
		if !ok {
			continue
		}
		mark := "missing"
		if s.Present {
			mark = "found"
		}
		required := ""
		if s.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  %-10s %s%s\n", name, mark, required)
	}
}

func printRecommendations(w io.Writer, recs []analysis.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "\nNo recommendations, the resume covers the basics.")
		return
	}

	fmt.Fprintln(w, "\nRecommendations:")
	for i, rec := range recs {
		fmt.Fprintf(w, "  %d. [%s] %s\n     %s\n     Action: %s\n", i+1, rec.Priority, rec.Title, rec.Description, rec.Action)
	}
}

func printSkills(w io.Writer, skills analysis.SkillsSummary) {
	groups := []struct {
		label   string
		matches []analysis.SkillMatch
	}{
		{"Technical", skills.Technical},
		{"Soft", skills.Soft},
		{"Industry", skills.Industry},
	}

	for _, g := range groups {
		fmt.Fprintf(w, "%s (%d):\n", g.label, len(g.matches))
		for _, m := range g.matches {
			fmt.Fprintf(w, "  %-22s %-16s %3d%%\n", m.Name, m.Category, m.Confidence)
		}
	}
}

func printInsights(w io.Writer, r *enrich.Result) {
	in := r.AI
	fmt.Fprintf(w, "\nInsights (%s, confidence %s, score %d):\n", in.Source, in.Confidence, in.AIScore)
	for _, line := range in.Insights {
		fmt.Fprintf(w, "  * %s\n", line)
	}
	if in.CareerPositioning != "" {
		fmt.Fprintf(w, "Career positioning: %s\n", in.CareerPositioning)
	}
	if in.IndustryAlignment != "" {
		fmt.Fprintf(w, "Industry alignment: %s\n", in.IndustryAlignment)
	}
	if in.CompetitiveEdge != "" {
		fmt.Fprintf(w, "Competitive edge: %s\n", in.CompetitiveEdge)
	}
	if len(in.ContentEnhancements) > 0 {
		fmt.Fprintln(w, "Content enhancements:")
		for _, e := range in.ContentEnhancements {
			fmt.Fprintf(w, "  > %s\n", e)
		}
	}
}

func printStats(w io.Writer, name string, s analysis.Stats) {
	fmt.Fprintf(w, "%-32s %3d %-3s words %-5d skills %-3d recs %-2d strengths %d improvements %d",
		truncateName(name, 32), s.Overall.Score, s.Overall.Grade, s.Content.WordCount,
		s.Content.SkillsFound, s.Content.RecommendationsCount, s.Overall.Strengths, s.Overall.Improvements)
	if s.CompressionRatio > 0 {
		fmt.Fprintf(w, " kept %.1f%%", s.CompressionRatio)
	}
	fmt.Fprintln(w)
}

func printComparison(w io.Writer, c *analysis.Comparison) {
	fmt.Fprintf(w, "Comparing %s -> %s\n", c.Files[0], c.Files[1])
	row := func(label string, d analysis.Delta) {
		fmt.Fprintf(w, "  %-16s %4d %4d %+5d\n", label, d.First, d.Second, d.Difference)
	}
	row("score", c.Scores)
	for _, area := range []string{"content", "structure", "keywords", "completeness"} {
		if d, ok := c.Breakdown[area]; ok {
			row(area, d)
		}
	}
	row("skills", c.Skills)
	row("recommendations", c.Recommendations)
}

func truncateName(name string, limit int) string {
	runes := []rune(name)
	if len(runes) <= limit {
		return name
	}
	return string(runes[:limit-3]) + "..."
}
