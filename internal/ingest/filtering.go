// Package ingest turns files into analyzable documents. Loaded documents pass through
// a sequence of filter steps; a document a step rejects is reported, not fatal.
package ingest

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Document is one input file and its text as it moves through the steps.
type Document struct {
	Name string
	Path string
	Raw  []byte
	// Text is filled by the normalize step.
	Text string
	// OriginalLength is the rune count of the raw text before normalization.
	OriginalLength int
}

// Rejection records why a document was dropped.
type Rejection struct {
	Name string
	Step string
	Err  error
}

// stepStats describes the result of executing a filtering step.
type stepStats struct {
	Initial int
	Dropped int
	Left    int
}

// Filter is a single ingestion step.
type Filter interface {
	Name() string
	Apply(ctx context.Context, docs []*Document) ([]*Document, []Rejection, error)
}

// Run executes steps sequentially. An error from a step aborts the run; rejections
// accumulate and the surviving documents keep their input order.
func Run(ctx context.Context, logger *zap.Logger, steps []Filter, docs []*Document) ([]*Document, []Rejection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var rejected []Rejection
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, rejected, err
		}

		initial := len(docs)
		next, dropped, err := step.Apply(ctx, docs)
		if err != nil {
			return nil, rejected, fmt.Errorf("%s: %w", step.Name(), err)
		}

		for i := range dropped {
			dropped[i].Step = step.Name()
			logger.Info("document rejected",
				zap.String("name", dropped[i].Name),
				zap.String("step", step.Name()),
				zap.Error(dropped[i].Err),
			)
		}
		rejected = append(rejected, dropped...)

		info := stepStats{Initial: initial, Dropped: len(dropped), Left: len(next)}
		logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		docs = next
	}

	return docs, rejected, nil
}

// partition keeps documents for which check returns nil and rejects the rest.
func partition(docs []*Document, check func(*Document) error) ([]*Document, []Rejection) {
	kept := make([]*Document, 0, len(docs))
	var rejected []Rejection
	for _, doc := range docs {
		if err := check(doc); err != nil {
			rejected = append(rejected, Rejection{Name: doc.Name, Err: err})
			continue
		}
		kept = append(kept, doc)
	}
	return kept, rejected
}
