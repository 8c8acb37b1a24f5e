// Package lexicon holds the static word tables the analyzer matches resumes against.
//
// Every accessor returns a fresh copy, so callers may not mutate the shared tables.
package lexicon

// Version identifies the revision of the tables below. Bump it whenever a table changes
// so stored results can be traced back to the vocabulary that produced them.
const Version = "v1"

// Category is a named group of terms inside a table.
type Category struct {
	Name  string
	Terms []string
}

// Table is an ordered list of categories. Order is declaration order and is stable.
type Table []Category

// Terms flattens the table in declaration order, keeping duplicates across categories.
func (t Table) Terms() []string {
	var out []string
	for _, c := range t {
		out = append(out, c.Terms...)
	}
	return out
}

// Distinct flattens the table and drops repeated terms, keeping the first occurrence.
func (t Table) Distinct() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, term := range t.Terms() {
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// Category returns the terms of the named category.
func (t Table) Category(name string) ([]string, bool) {
	for _, c := range t {
		if c.Name == name {
			return append([]string(nil), c.Terms...), true
		}
	}
	return nil, false
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for i, c := range t {
		out[i] = Category{Name: c.Name, Terms: append([]string(nil), c.Terms...)}
	}
	return out
}

var technicalSkills = Table{
	{Name: "programming", Terms: []string{
		"javascript", "python", "java", "cplusplus", "csharp", "php", "ruby", "go", "rust", "kotlin",
		"swift", "typescript", "scala", "perl", "r", "matlab", "sql", "html", "css", "sass",
		"less", "react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
		"laravel", "rails", "asp.net", "jquery", "bootstrap", "tailwind", "c++", "c#",
	}},
	{Name: "frameworks", Terms: []string{
		"react", "angular", "vue.js", "node.js", "express.js", "django", "flask", "spring boot",
		"laravel", "ruby on rails", "asp.net", "ember.js", "backbone.js", "meteor", "gatsby",
		"next.js", "nuxt.js", "svelte", "fastapi", "nestjs",
	}},
	{Name: "databases", Terms: []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle",
		"sql server", "dynamodb", "cassandra", "neo4j", "firebase", "supabase",
	}},
	{Name: "cloud", Terms: []string{
		"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "jenkins", "gitlab ci",
		"github actions", "terraform", "ansible", "chef", "puppet", "vagrant",
	}},
	{Name: "tools", Terms: []string{
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "slack", "figma",
		"sketch", "adobe xd", "photoshop", "illustrator", "vs code", "intellij", "eclipse",
	}},
}

var softSkills = Table{
	{Name: "leadership", Terms: []string{
		"leadership", "team management", "project management", "strategic planning",
		"mentoring", "coaching", "delegation", "decision making", "conflict resolution",
	}},
	{Name: "communication", Terms: []string{
		"communication", "presentation", "public speaking", "writing", "documentation",
		"interpersonal skills", "collaboration", "negotiation", "customer service",
	}},
	{Name: "analytical", Terms: []string{
		"problem solving", "analytical thinking", "critical thinking", "research",
		"data analysis", "troubleshooting", "debugging", "optimization",
	}},
	{Name: "personal", Terms: []string{
		"adaptability", "creativity", "innovation", "time management", "organization",
		"attention to detail", "multitasking", "self-motivated", "proactive",
	}},
}

var industrySkills = Table{
	{Name: "marketing", Terms: []string{
		"seo", "sem", "google analytics", "social media marketing", "content marketing",
		"email marketing", "ppc", "conversion optimization", "a/b testing", "hubspot",
	}},
	{Name: "finance", Terms: []string{
		"financial analysis", "budgeting", "forecasting", "risk management", "excel",
		"quickbooks", "sap", "bloomberg terminal", "financial modeling",
	}},
	{Name: "design", Terms: []string{
		"ui/ux design", "graphic design", "web design", "prototyping", "wireframing",
		"user research", "usability testing", "design thinking", "brand design",
	}},
}

// industryKeywords only feeds the keyword relevance score.
var industryKeywords = Table{
	{Name: "technology", Terms: []string{
		"software", "development", "programming", "coding", "algorithm", "architecture",
		"api", "database", "frontend", "backend", "fullstack", "devops", "agile", "scrum",
	}},
	{Name: "marketing", Terms: []string{
		"campaign", "brand", "digital marketing", "growth", "acquisition", "retention",
		"roi", "kpi", "conversion", "engagement", "lead generation",
	}},
	{Name: "finance", Terms: []string{
		"accounting", "audit", "tax", "investment", "portfolio", "compliance",
		"financial reporting", "budgeting", "forecasting", "valuation",
	}},
	{Name: "healthcare", Terms: []string{
		"patient care", "medical", "clinical", "diagnosis", "treatment", "healthcare",
		"nursing", "pharmacy", "surgery", "research",
	}},
}

// industryFocus drives industry detection in the enrichment heuristics.
// An industry counts as detected once MinIndustryHits of its terms appear.
var industryFocus = Table{
	{Name: "technology", Terms: []string{"software", "programming", "development", "tech", "digital", "api", "database"}},
	{Name: "finance", Terms: []string{"financial", "banking", "investment", "accounting", "audit", "portfolio"}},
	{Name: "healthcare", Terms: []string{"medical", "clinical", "patient", "healthcare", "hospital", "pharmacy"}},
	{Name: "marketing", Terms: []string{"marketing", "campaign", "brand", "advertising", "social media", "seo"}},
	{Name: "education", Terms: []string{"education", "teaching", "curriculum", "student", "academic", "research"}},
}

// MinIndustryHits is the number of distinct focus terms an industry needs to be detected.
const MinIndustryHits = 2

// TechnicalSkills returns the technical skill table.
func TechnicalSkills() Table { return technicalSkills.clone() }

// SoftSkills returns the soft skill table.
func SoftSkills() Table { return softSkills.clone() }

// IndustrySkills returns the industry skill table.
func IndustrySkills() Table { return industrySkills.clone() }

// IndustryKeywords returns the industry-context keyword table used by keyword scoring.
func IndustryKeywords() Table { return industryKeywords.clone() }

// IndustryFocus returns the industry detection table used by enrichment.
func IndustryFocus() Table { return industryFocus.clone() }
