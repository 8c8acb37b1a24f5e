package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-analyzer/internal/lexicon"
)

const wordsPerMinute = 200

// Analyzer runs the base pipeline. It holds no per-analysis state and is safe for concurrent use.
type Analyzer struct {
	logger *zap.Logger
	rules  []Rule
	now    func() time.Time
	newID  func() string
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithIDGenerator overrides the analysis ID source.
func WithIDGenerator(newID func() string) Option {
	return func(a *Analyzer) { a.newID = newID }
}

// WithRules replaces the recommendation rules.
func WithRules(rules []Rule) Option {
	return func(a *Analyzer) { a.rules = rules }
}

// New creates an Analyzer. A nil logger disables logging.
func New(logger *zap.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Analyzer{
		logger: logger,
		rules:  DefaultRules(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores text and returns the assembled result. It fails only with ErrEmptyInput
// or a context error.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < MinTextLength {
		return nil, fmt.Errorf("%w: %d characters, need at least %d", ErrEmptyInput, n, MinTextLength)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		skills   SkillsSummary
		sections map[string]SectionReport
		overall  OverallAssessment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills = ExtractSkills(text)
		return gctx.Err()
	})
	g.Go(func() error {
		sections = DetectSections(text)
		return gctx.Err()
	})
	g.Go(func() error {
		overall = Score(text)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recommendations := RunRules(NewInput(text, skills), a.rules, a.logger)

	words := WordCount(text)
	result := &Result{
		Overall:         overall,
		Sections:        sections,
		Skills:          skills,
		Recommendations: recommendations,
		Metadata: Metadata{
			AnalysisID:        a.newID(),
			WordCount:         words,
			CharacterCount:    utf8.RuneCountInString(text),
			EstimatedReadTime: int(math.Ceil(float64(words) / wordsPerMinute)),
			AnalyzedAt:        a.now(),
			LexiconVersion:    lexicon.Version,
		},
	}

	a.logger.Debug("analysis completed",
		zap.String("analysis_id", result.Metadata.AnalysisID),
		zap.Int("score", overall.Score),
		zap.String("grade", overall.Grade),
		zap.Int("skills", skills.Total),
		zap.Int("recommendations", len(recommendations)),
	)

	return result, nil
}

// Document is one named text for batch analysis.
type Document struct {
	Name string
	Text string
}

// BatchItem is the outcome for one Document. Exactly one of Result and Err is set.
type BatchItem struct {
	Name   string
	Result *Result
	Err    error
}

// AnalyzeBatch analyzes documents concurrently. A failing document does not stop the
// others; items are returned in input order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, docs []Document, concurrency int) []BatchItem {
	items := make([]BatchItem, len(docs))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, doc := range docs {
		g.Go(func() error {
			result, err := a.Analyze(ctx, doc.Text)
			if result != nil {
				result.Metadata.FileName = doc.Name
			}
			items[i] = BatchItem{Name: doc.Name, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return items
}
