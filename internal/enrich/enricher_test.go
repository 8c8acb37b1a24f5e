package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/analysis"
)

const resumeText = "John Doe john@x.com (555) 123-4567 EXPERIENCE Led team of 5. Increased sales by 25%. SKILLS Python, React, Leadership"

type stubProvider struct {
	insights *ai.Insights
	err      error
	block    bool
	calls    int
	summary  ai.Summary
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Insights(ctx context.Context, _ string, summary ai.Summary) (*ai.Insights, error) {
	s.calls++
	s.summary = summary
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.insights, s.err
}

func baseResult(t *testing.T) *analysis.Result {
	t.Helper()

	a := analysis.New(nil,
		analysis.WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }),
		analysis.WithIDGenerator(func() string { return "fixed" }),
	)
	result, err := a.Analyze(context.Background(), resumeText)
	require.NoError(t, err)
	return result
}

func TestEnrichWithoutProviderIsDeterministic(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	enricher := New(nil, 0, zap.New(core))
	base := baseResult(t)

	first, err := enricher.Enrich(context.Background(), resumeText, base)
	require.NoError(t, err)
	second, err := enricher.Enrich(context.Background(), resumeText, base)
	require.NoError(t, err)

	for _, r := range []*Result{first, second} {
		assert.Equal(t, ai.SourceLocal, r.AI.Source)
		assert.Equal(t, StateFellBackToLocal, r.Outcome.State)
		assert.ErrorIs(t, r.Outcome.Err, ai.ErrProviderUnavailable)
		assert.False(t, r.Remote())
		assert.NotEmpty(t, r.AI.Insights)
		assert.NotEmpty(t, r.AI.ContentEnhancements)
	}
	assert.Equal(t, first.AI, second.AI)
	assert.Equal(t, base.Overall.Score, first.Overall.Score)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "provider_unavailable", entry.ContextMap()["reason"])
	assert.Equal(t, "fixed", entry.ContextMap()["analysis_id"])
}

func TestEnrichRemoteSuccess(t *testing.T) {
	provider := &stubProvider{insights: &ai.Insights{
		Insights:   []string{"remote"},
		AIScore:    88,
		Confidence: "medium",
	}}
	base := baseResult(t)
	baseScore := base.Overall.Score

	result, err := New(provider, time.Second, nil).Enrich(context.Background(), resumeText, base)
	require.NoError(t, err)

	assert.True(t, result.Remote())
	assert.NoError(t, result.Outcome.Err)
	assert.Equal(t, "stub", result.AI.Source)
	assert.Equal(t, 88, result.Overall.Score)
	assert.Equal(t, baseScore, result.Outcome.BaseScore)
	assert.Equal(t, base.Overall.Grade, result.Overall.Grade)
	assert.Equal(t, baseScore, base.Overall.Score, "base result must not change")
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, ai.NewSummary(base), provider.summary)
}

func TestEnrichRemoteZeroScoreKeepsBaseScore(t *testing.T) {
	provider := &stubProvider{insights: &ai.Insights{Source: ai.SourceGemini}}
	base := baseResult(t)

	result, err := New(provider, time.Second, nil).Enrich(context.Background(), resumeText, base)
	require.NoError(t, err)

	assert.Equal(t, ai.SourceGemini, result.AI.Source)
	assert.Equal(t, base.Overall.Score, result.Overall.Score)
}

func TestEnrichFallsBackOnProviderFailure(t *testing.T) {
	cases := []struct {
		name     string
		provider *stubProvider
		timeout  time.Duration
		reason   string
		target   error
	}{
		{
			name:     "malformed",
			provider: &stubProvider{err: ai.ErrMalformedResponse},
			reason:   "malformed_response",
			target:   ai.ErrMalformedResponse,
		},
		{
			name:     "transport",
			provider: &stubProvider{err: errors.New("connection refused")},
			reason:   "provider_unavailable",
			target:   ai.ErrProviderUnavailable,
		},
		{
			name:     "timeout",
			provider: &stubProvider{block: true},
			timeout:  10 * time.Millisecond,
			reason:   "provider_unavailable",
			target:   context.DeadlineExceeded,
		},
		{
			name:     "nil insights",
			provider: &stubProvider{},
			reason:   "malformed_response",
			target:   ai.ErrMalformedResponse,
		},
	}

	base := baseResult(t)
	local := Local(resumeText, base)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)

			timeout := tc.timeout
			if timeout == 0 {
				timeout = time.Second
			}
			result, err := New(tc.provider, timeout, zap.New(core)).Enrich(context.Background(), resumeText, base)
			require.NoError(t, err)

			assert.Equal(t, 1, tc.provider.calls, "remote call is attempted exactly once")
			assert.Equal(t, StateFellBackToLocal, result.Outcome.State)
			assert.ErrorIs(t, result.Outcome.Err, tc.target)
			assert.Equal(t, local, result.AI)
			assert.Equal(t, base.Overall.Score, result.Overall.Score)

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tc.reason, logs.All()[0].ContextMap()["reason"])
		})
	}
}

func TestEnrichRequiresBase(t *testing.T) {
	_, err := New(nil, 0, nil).Enrich(context.Background(), resumeText, nil)
	assert.Error(t, err)
}

func TestEnrichedResultJSON(t *testing.T) {
	result, err := New(nil, 0, nil).Enrich(context.Background(), resumeText, baseResult(t))
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "overall")
	assert.Contains(t, decoded, "sections")
	assert.Contains(t, decoded, "metadata")
	assert.NotContains(t, decoded, "Outcome")

	aiField, ok := decoded["ai"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, ai.SourceLocal, aiField["source"])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not_started", StateNotStarted.String())
	assert.Equal(t, "remote_attempted", StateRemoteAttempted.String())
	assert.Equal(t, "succeeded", StateSucceeded.String())
	assert.Equal(t, "fell_back_to_local", StateFellBackToLocal.String())
	assert.Equal(t, "state(9)", State(9).String())
}
