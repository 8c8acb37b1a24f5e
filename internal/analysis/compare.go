package analysis

import (
	"errors"
	"time"
)

// Delta compares one number across two results. Difference is second minus first.
type Delta struct {
	First      int `json:"first"`
	Second     int `json:"second"`
	Difference int `json:"difference"`
}

func newDelta(first, second int) Delta {
	return Delta{First: first, Second: second, Difference: second - first}
}

// Comparison is the side-by-side view of two analyses.
type Comparison struct {
	Scores          Delta            `json:"scores"`
	Breakdown       map[string]Delta `json:"breakdown"`
	Skills          Delta            `json:"skills"`
	Recommendations Delta            `json:"recommendations"`
	ComparedAt      time.Time        `json:"comparedAt"`
	Files           [2]string        `json:"files"`
}

// Compare diffs two results. Both must be non-nil.
func Compare(first, second *Result, now time.Time) (*Comparison, error) {
	if first == nil || second == nil {
		return nil, errors.New("both analyses are required for comparison")
	}

	breakdown := make(map[string]Delta, len(areas))
	for _, a := range areas {
		breakdown[a.key] = newDelta(first.Overall.Breakdown.value(a.key), second.Overall.Breakdown.value(a.key))
	}

	return &Comparison{
		Scores:          newDelta(first.Overall.Score, second.Overall.Score),
		Breakdown:       breakdown,
		Skills:          newDelta(first.Skills.Total, second.Skills.Total),
		Recommendations: newDelta(len(first.Recommendations), len(second.Recommendations)),
		ComparedAt:      now,
		Files:           [2]string{first.Metadata.FileName, second.Metadata.FileName},
	}, nil
}
