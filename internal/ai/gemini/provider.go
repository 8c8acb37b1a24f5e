package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type modelNamer interface {
	Model() string
}

//go:embed prompt.md
var promptTemplate string

//go:embed schema.json
var responseSchema string

var schemaLoader = gojsonschema.NewStringLoader(responseSchema)

const (
	defaultMaxLogLength = 200
	// maxPromptTextRunes bounds how much resume text is sent upstream.
	maxPromptTextRunes = 2000
)

// Provider asks Gemini for resume insights.
type Provider struct {
	generator contentGenerator
	logger    *zap.Logger
	limiter   *rate.Limiter
	maxLogLen int
}

// NewProvider wraps generator. requestsPerMinute <= 0 disables pacing.
func NewProvider(generator contentGenerator, log *zap.Logger, requestsPerMinute, maxLogLength int) *Provider {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
	}

	model := ""
	if namer, ok := generator.(modelNamer); ok {
		model = namer.Model()
	}

	return &Provider{
		generator: generator,
		logger:    logger.WithCommonFields(log, ai.SourceGemini, model),
		limiter:   limiter,
		maxLogLen: maxLogLength,
	}
}

// Name implements ai.Provider.
func (p *Provider) Name() string {
	return ai.SourceGemini
}

// Insights implements ai.Provider. Failures wrap ai.ErrProviderUnavailable or ai.ErrMalformedResponse.
func (p *Provider) Insights(ctx context.Context, text string, summary ai.Summary) (*ai.Insights, error) {
	if p == nil || p.generator == nil {
		return nil, fmt.Errorf("%w: gemini generator is not configured", ai.ErrProviderUnavailable)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for rate limiter: %w", ai.ErrProviderUnavailable, err)
	}

	prompt := buildPrompt(text, summary)

	p.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrProviderUnavailable, err)
	}

	p.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, p.maxLogLen)),
	)

	insights, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	insights.Source = ai.SourceGemini

	return insights, nil
}

func buildPrompt(text string, summary ai.Summary) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME_TEXT}}\n\nScore: {{SCORE}} ({{GRADE}})\n\nJSON Response:"
	}

	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", utils.Excerpt(text, maxPromptTextRunes),
		"{{SCORE}}", strconv.Itoa(summary.Score),
		"{{GRADE}}", summary.Grade,
		"{{SKILLS_TOTAL}}", strconv.Itoa(summary.SkillsTotal),
		"{{STRENGTHS}}", joinOrNone(summary.Strengths),
		"{{IMPROVEMENTS}}", joinOrNone(summary.Improvements),
	)
	return replacer.Replace(template)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// reply mirrors schema.json. Weak decoding lets a numeric string stand in for aiScore.
type reply struct {
	Insights            []string `mapstructure:"insights"`
	CareerPositioning   string   `mapstructure:"careerPositioning"`
	ContentEnhancements []string `mapstructure:"contentEnhancements"`
	IndustryAlignment   string   `mapstructure:"industryAlignment"`
	CompetitiveEdge     string   `mapstructure:"competitiveEdge"`
	AIScore             float64  `mapstructure:"aiScore"`
	Confidence          string   `mapstructure:"confidence"`
}

func parseResponse(raw string) (*ai.Insights, error) {
	cleaned := extractJSON(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", ai.ErrMalformedResponse)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			problems = append(problems, field+": "+desc.Description())
		}
		return nil, fmt.Errorf("%w: %s", ai.ErrMalformedResponse, strings.Join(problems, "; "))
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	var r reply
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return nil, fmt.Errorf("create reply decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	return &ai.Insights{
		Insights:            trimAll(r.Insights),
		CareerPositioning:   strings.TrimSpace(r.CareerPositioning),
		ContentEnhancements: trimAll(r.ContentEnhancements),
		IndustryAlignment:   strings.TrimSpace(r.IndustryAlignment),
		CompetitiveEdge:     strings.TrimSpace(r.CompetitiveEdge),
		AIScore:             int(math.Round(math.Min(math.Max(r.AIScore, 0), 100))),
		Confidence:          strings.TrimSpace(r.Confidence),
	}, nil
}

// extractJSON strips markdown fences and returns the outermost {...} span, or "".
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return ""
	}
	return strings.TrimSpace(raw[start : end+1])
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
