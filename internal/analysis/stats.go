package analysis

import "math"

// Stats is a compact summary of a result.
type Stats struct {
	Overall struct {
		Score        int    `json:"score"`
		Grade        string `json:"grade"`
		Strengths    int    `json:"strengths"`
		Improvements int    `json:"improvements"`
	} `json:"overall"`
	Content struct {
		WordCount            int `json:"wordCount"`
		SkillsFound          int `json:"skillsFound"`
		RecommendationsCount int `json:"recommendationsCount"`
		ReadingTime          int `json:"readingTime"`
	} `json:"content"`
	// CompressionRatio is the normalized text length as a percentage of the original, one decimal.
	CompressionRatio float64 `json:"compressionRatio"`
}

// Summarize builds Stats for r.
func Summarize(r *Result) Stats {
	var s Stats
	if r == nil {
		return s
	}

	s.Overall.Score = r.Overall.Score
	s.Overall.Grade = r.Overall.Grade
	s.Overall.Strengths = len(r.Overall.Strengths)
	s.Overall.Improvements = len(r.Overall.Improvements)

	s.Content.WordCount = r.Metadata.WordCount
	s.Content.SkillsFound = r.Skills.Total
	s.Content.RecommendationsCount = len(r.Recommendations)
	s.Content.ReadingTime = r.Metadata.EstimatedReadTime

	if r.Metadata.OriginalTextLength > 0 {
		ratio := float64(r.Metadata.TextLength) / float64(r.Metadata.OriginalTextLength) * 100
		s.CompressionRatio = math.Round(ratio*10) / 10
	}

	return s
}
