package lexicon

import (
	"testing"
)

func TestRubricIsFixed(t *testing.T) {
	sections := Rubric()
	if len(sections) != 6 {
		t.Fatalf("expected 6 rubric sections, got %d", len(sections))
	}

	want := []string{SectionContact, SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects}
	for i, name := range want {
		if sections[i].Name != name {
			t.Fatalf("section %d: expected %q, got %q", i, name, sections[i].Name)
		}
	}

	if sections[5].Required {
		t.Fatalf("projects must be optional")
	}

	var total float64
	for _, s := range sections {
		total += s.Weight
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("expected rubric weights to sum to 1, got %v", total)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	tech := TechnicalSkills()
	tech[0].Terms[0] = "mutated"
	if TechnicalSkills()[0].Terms[0] != "javascript" {
		t.Fatalf("technical table was mutated through accessor")
	}

	sections := Rubric()
	sections[0].Indicators[0] = "mutated"
	if Rubric()[0].Indicators[0] != "email" {
		t.Fatalf("rubric was mutated through accessor")
	}

	verbs := ActionVerbs()
	verbs[0] = "mutated"
	if ActionVerbs()[0] != "achieved" {
		t.Fatalf("action verbs were mutated through accessor")
	}
}

func TestTableTermsAndDistinct(t *testing.T) {
	table := Table{
		{Name: "a", Terms: []string{"react", "go"}},
		{Name: "b", Terms: []string{"react", "rust"}},
	}

	if got := len(table.Terms()); got != 4 {
		t.Fatalf("expected duplicates to be kept, got %d terms", got)
	}

	distinct := table.Distinct()
	if len(distinct) != 3 || distinct[0] != "react" || distinct[2] != "rust" {
		t.Fatalf("unexpected distinct terms: %v", distinct)
	}

	terms, ok := table.Category("b")
	if !ok || len(terms) != 2 {
		t.Fatalf("expected category b, got %v %v", terms, ok)
	}

	if _, ok := table.Category("missing"); ok {
		t.Fatalf("expected missing category lookup to fail")
	}
}

func TestWordListSizes(t *testing.T) {
	if got := len(ActionVerbs()); got != 13 {
		t.Fatalf("expected 13 action verbs, got %d", got)
	}
	if got := len(IndustryFocus()); got != 5 {
		t.Fatalf("expected 5 focus industries, got %d", got)
	}
	if got := len(ModernPractices()); got != 6 {
		t.Fatalf("expected 6 modern practice terms, got %d", got)
	}
}
