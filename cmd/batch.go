package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/enrich"
	"github.com/spigell/resume-analyzer/internal/ingest"
	"github.com/spigell/resume-analyzer/internal/logger"
)

const defaultConcurrency = 4

var batchCmd = &cobra.Command{
	Use:   "batch file [file...]",
	Short: "Analyze several resumes and print a summary per file",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("concurrency", "c", defaultConcurrency, "how many resumes are analyzed at once")
	batchCmd.Flags().StringP("exclude-file", "e", "", "file with names of resumes to skip, one per line")

	viper.BindPFlag("exclude-file", batchCmd.Flags().Lookup("exclude-file"))
}

// batchEntry is one line of the batch report. Error is set for a rejected or failed document.
type batchEntry struct {
	Name     string          `json:"name"`
	Stats    *analysis.Stats `json:"stats,omitempty"`
	Result   *enrich.Result  `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
	Insights string          `json:"insights,omitempty"`
}

func batch(cmd *cobra.Command, paths []string) {
	ctx := context.Background()
	rt := setup(ctx)

	concurrency, _ := cmd.Flags().GetInt("concurrency")

	docs, rejected, err := rt.ingestFiles(ctx, paths, rt.config.ExcludeFile)
	if err != nil {
		rt.logger.Fatal("ingesting input", zap.Error(err))
	}

	rt.logger.Info("starting the batch",
		zap.Int("accepted", len(docs)),
		zap.Int("rejected", len(rejected)),
		zap.Int("concurrency", concurrency),
	)

	entries := rt.analyzeBatch(ctx, docs, concurrency)
	for _, rej := range rejected {
		entries = append(entries, batchEntry{Name: rej.Name, Error: fmt.Sprintf("%s: %s", rej.Step, rej.Err)})
	}

	if err := rt.writeReport(entries, func(w io.Writer) { printBatch(w, entries) }); err != nil {
		rt.logger.Fatal("writing report", zap.Error(err))
	}
}

// analyzeBatch runs the base pipeline over docs, then enriches each result. Enrichment
// shares the concurrency limit; the provider paces its own remote calls.
func (r *runtime) analyzeBatch(ctx context.Context, docs []*ingest.Document, concurrency int) []batchEntry {
	inputs := make([]analysis.Document, len(docs))
	for i, doc := range docs {
		inputs[i] = analysis.Document{Name: doc.Name, Text: doc.Text}
	}

	items := r.analyzer.AnalyzeBatch(ctx, inputs, concurrency)
	entries := make([]batchEntry, len(items))

	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, item := range items {
		entries[i].Name = item.Name
		if item.Err != nil {
			entries[i].Error = item.Err.Error()
			r.logger.Warn("analysis failed", zap.String(logger.FieldFile, item.Name), zap.Error(item.Err))
			continue
		}

		doc := docs[i]
		g.Go(func() error {
			attachSource(item.Result, doc)

			enriched, err := r.enricher.Enrich(ctx, doc.Text, item.Result)
			if err != nil {
				entries[i].Error = err.Error()
				return nil
			}

			stats := analysis.Summarize(&enriched.Result)
			entries[i].Stats = &stats
			entries[i].Result = enriched
			entries[i].Insights = enriched.Outcome.State.String()
			return nil
		})
	}
	_ = g.Wait()

	return entries
}

func printBatch(w io.Writer, entries []batchEntry) {
	var ok, failed int
	for _, e := range entries {
		if e.Error != "" {
			failed++
			fmt.Fprintf(w, "%-32s error: %s\n", truncateName(e.Name, 32), e.Error)
			continue
		}
		ok++
		printStats(w, e.Name, *e.Stats)
	}
	fmt.Fprintf(w, "\n%d analyzed, %d failed\n", ok, failed)
}
