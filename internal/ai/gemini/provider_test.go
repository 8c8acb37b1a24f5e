package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/logger"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

const validReply = `{
  "insights": ["Clear impact", "  Strong Go background "],
  "careerPositioning": "Position for backend roles",
  "contentEnhancements": ["Add a summary"],
  "industryAlignment": "Aligned with technology",
  "competitiveEdge": "Quantified results",
  "aiScore": 82,
  "confidence": "high"
}`

var testSummary = ai.Summary{
	Score:        61,
	Grade:        "C+",
	SkillsTotal:  9,
	Improvements: []string{"Content", "Keywords"},
}

func TestProviderInsights(t *testing.T) {
	stub := &stubGenerator{response: validReply}
	provider := NewProvider(stub, zap.NewNop(), 0, 0)

	insights, err := provider.Insights(context.Background(), "Resume body text", testSummary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if insights.Source != ai.SourceGemini {
		t.Fatalf("unexpected source: %q", insights.Source)
	}
	if insights.AIScore != 82 {
		t.Fatalf("expected aiScore 82, got %d", insights.AIScore)
	}
	if len(insights.Insights) != 2 || insights.Insights[1] != "Strong Go background" {
		t.Fatalf("unexpected insights: %#v", insights.Insights)
	}
	if insights.Confidence != "high" {
		t.Fatalf("unexpected confidence: %q", insights.Confidence)
	}

	for _, want := range []string{
		"Resume body text",
		"Overall Score: 61/100 (C+)",
		"Skills Found: 9",
		"Strengths: none",
		"Improvements: Content, Keywords",
	} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}

func TestProviderTruncatesResumeText(t *testing.T) {
	stub := &stubGenerator{response: validReply}
	provider := NewProvider(stub, nil, 0, 0)

	text := strings.Repeat("a", maxPromptTextRunes) + strings.Repeat("Ω", 100)
	if _, err := provider.Insights(context.Background(), text, testSummary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(stub.lastPrompt, "Ω") {
		t.Fatalf("expected text beyond %d runes to be cut", maxPromptTextRunes)
	}
}

func TestProviderGeneratorFailure(t *testing.T) {
	stub := &stubGenerator{err: errors.New("connection reset")}
	provider := NewProvider(stub, zap.NewNop(), 0, 0)

	_, err := provider.Insights(context.Background(), "text", testSummary)
	if !errors.Is(err, ai.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestProviderCancelledContext(t *testing.T) {
	stub := &stubGenerator{response: validReply}
	provider := NewProvider(stub, zap.NewNop(), 60, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Insights(ctx, "text", testSummary)
	if !errors.Is(err, ai.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", stub.calls)
	}
}

func TestProviderLogsWithCommonFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	stub := &stubGenerator{response: validReply}
	provider := NewProvider(stub, zap.New(core), 0, 10)

	if _, err := provider.Insights(context.Background(), "text", testSummary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("gemini generate content request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields[logger.FieldModel] != "stub-model" {
		t.Fatalf("expected model field, got %v", fields[logger.FieldModel])
	}
	if preview, _ := fields["prompt_preview"].(string); len([]rune(preview)) != 13 {
		t.Fatalf("expected preview truncated to 10 runes plus ellipsis, got %q", preview)
	}
}

func TestParseResponse(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantScore int
		malformed bool
	}{
		{name: "plain", raw: validReply, wantScore: 82},
		{name: "fenced", raw: "```json\n" + validReply + "\n```", wantScore: 82},
		{name: "surrounding prose", raw: "Here you go:\n" + validReply + "\nThanks!", wantScore: 82},
		{name: "string score", raw: strings.Replace(validReply, `"aiScore": 82`, `"aiScore": "77.6"`, 1), wantScore: 78},
		{name: "not json", raw: "I cannot help with that", malformed: true},
		{name: "broken json", raw: `{"insights": [}`, malformed: true},
		{name: "missing field", raw: `{"insights": []}`, malformed: true},
		{name: "wrong type", raw: strings.Replace(validReply, `"careerPositioning": "Position for backend roles"`, `"careerPositioning": 5`, 1), malformed: true},
		{name: "score out of range", raw: strings.Replace(validReply, `"aiScore": 82`, `"aiScore": 140`, 1), malformed: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			insights, err := parseResponse(tc.raw)
			if tc.malformed {
				if !errors.Is(err, ai.ErrMalformedResponse) {
					t.Fatalf("expected ErrMalformedResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if insights.AIScore != tc.wantScore {
				t.Fatalf("expected score %d, got %d", tc.wantScore, insights.AIScore)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		`noise {"a":{"b":2}} tail`: `{"a":{"b":2}}`,
		"no object":               "",
		"} backwards {":           "",
	}

	for raw, want := range cases {
		if got := extractJSON(raw); got != want {
			t.Fatalf("extractJSON(%q) = %q, want %q", raw, got, want)
		}
	}
}
