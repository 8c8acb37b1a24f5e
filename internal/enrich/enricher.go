// Package enrich layers narrative insights over a base analysis. A remote provider is
// tried once; any failure falls back to the deterministic local generator.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/logger"
)

// DefaultTimeout bounds the remote call when no timeout is configured.
const DefaultTimeout = 20 * time.Second

// State tracks one enrichment attempt.
type State int

const (
	StateNotStarted State = iota
	StateRemoteAttempted
	StateSucceeded
	StateFellBackToLocal
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRemoteAttempted:
		return "remote_attempted"
	case StateSucceeded:
		return "succeeded"
	case StateFellBackToLocal:
		return "fell_back_to_local"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome records how the insights were obtained. Err is the reason the remote
// path was not used and is nil on success. BaseScore is the locally computed
// overall score, which Overall.Grade still describes after a remote score replaced it.
type Outcome struct {
	State     State
	Err       error
	BaseScore int
}

// Result is a base analysis with insights attached. Overall.Score may hold the
// remote provider's score.
type Result struct {
	analysis.Result
	AI      ai.Insights `json:"ai"`
	Outcome Outcome     `json:"-"`
}

// Remote reports whether the insights came from the remote provider.
func (r *Result) Remote() bool {
	return r.Outcome.State == StateSucceeded
}

// Enricher runs the enrichment state machine. It is safe for concurrent use.
type Enricher struct {
	provider ai.Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates an Enricher. A nil provider always uses the local generator;
// a non-positive timeout selects DefaultTimeout.
func New(provider ai.Provider, timeout time.Duration, log *zap.Logger) *Enricher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enricher{
		provider: provider,
		timeout:  timeout,
		logger:   logger.WithFields(log),
	}
}

// Enrich attaches insights to base. The base result is not modified. Provider
// failures are logged and recovered; the only error is a missing base.
func (e *Enricher) Enrich(ctx context.Context, text string, base *analysis.Result) (*Result, error) {
	if base == nil {
		return nil, errors.New("base analysis is required")
	}

	out := &Result{Result: *base, Outcome: Outcome{State: StateNotStarted, BaseScore: base.Overall.Score}}
	log := logger.WithFields(e.logger, logger.AnalysisFields(base.Metadata.AnalysisID, base.Metadata.FileName)...)

	if e.provider == nil {
		out.Outcome.Err = fmt.Errorf("%w: no provider configured", ai.ErrProviderUnavailable)
	} else {
		out.Outcome.State = StateRemoteAttempted

		insights, err := e.remote(ctx, text, base)
		if err == nil {
			out.AI = *insights
			out.Outcome.State = StateSucceeded
			if insights.AIScore > 0 {
				out.Overall.Score = insights.AIScore
			}
			log.Debug("remote insights applied",
				zap.String(logger.FieldProvider, e.provider.Name()),
				zap.Int("ai_score", insights.AIScore),
			)
			return out, nil
		}
		out.Outcome.Err = err
	}

	log.Warn("insight provider failed, using local insights",
		zap.String("reason", failureReason(out.Outcome.Err)),
		zap.Error(out.Outcome.Err),
	)

	out.AI = Local(text, base)
	out.Outcome.State = StateFellBackToLocal

	return out, nil
}

func (e *Enricher) remote(ctx context.Context, text string, base *analysis.Result) (*ai.Insights, error) {
	rctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	insights, err := e.provider.Insights(rctx, text, ai.NewSummary(base))
	switch {
	case err == nil:
	case errors.Is(err, ai.ErrMalformedResponse), errors.Is(err, ai.ErrProviderUnavailable):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: %w", ai.ErrProviderUnavailable, err)
	}

	if insights == nil {
		return nil, fmt.Errorf("%w: provider returned no insights", ai.ErrMalformedResponse)
	}

	result := *insights
	if result.Source == "" {
		result.Source = e.provider.Name()
	}
	return &result, nil
}

func failureReason(err error) string {
	if errors.Is(err, ai.ErrMalformedResponse) {
		return "malformed_response"
	}
	return "provider_unavailable"
}
