// Package samples bundles demo resumes for trying the analyzer without input files.
package samples

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/*.txt
var data embed.FS

// ErrNotFound is returned for an unknown sample ID.
var ErrNotFound = errors.New("sample not found")

// Sample is one bundled resume. ExpectedScore is the score band the resume was written to land in.
type Sample struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ExpectedScore int    `json:"expectedScore"`
	Text          string `json:"-"`
}

var catalog = []Sample{
	{
		ID:            "software-engineer",
		Title:         "Software Engineer",
		Description:   "Full-stack developer with React and Node.js experience",
		ExpectedScore: 85,
	},
	{
		ID:            "marketing-manager",
		Title:         "Marketing Manager",
		Description:   "Digital marketing professional with campaign management experience",
		ExpectedScore: 78,
	},
	{
		ID:            "entry-level",
		Title:         "Recent Graduate",
		Description:   "Entry-level resume with education focus",
		ExpectedScore: 65,
	},
}

// List returns every sample with its text loaded, in catalog order.
func List() ([]Sample, error) {
	out := make([]Sample, 0, len(catalog))
	for _, s := range catalog {
		loaded, err := load(s)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded)
	}
	return out, nil
}

// Get returns the sample with the given ID.
func Get(id string) (Sample, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range catalog {
		if s.ID == id {
			return load(s)
		}
	}
	return Sample{}, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, id, strings.Join(IDs(), ", "))
}

// IDs returns the sample IDs sorted alphabetically.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, s := range catalog {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}

// FileName is the name a sample is reported under in analysis metadata.
func (s Sample) FileName() string {
	return strings.ReplaceAll(strings.ToLower(s.Title), " ", "_") + "_sample.txt"
}

func load(s Sample) (Sample, error) {
	raw, err := data.ReadFile("data/" + s.ID + ".txt")
	if err != nil {
		return Sample{}, fmt.Errorf("read sample %s: %w", s.ID, err)
	}
	s.Text = string(raw)
	return s, nil
}
