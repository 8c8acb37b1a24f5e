package cmd

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/analysis"
)

var compareCmd = &cobra.Command{
	Use:   "compare first second",
	Short: "Compare two versions of a resume",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		compare(args)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func compare(paths []string) {
	ctx := context.Background()
	rt := setup(ctx)

	// Comparing a file with itself is allowed, so the duplicates step does not apply here.
	results := make([]*analysis.Result, 0, len(paths))
	for _, path := range paths {
		docs, rejected, err := rt.ingestFiles(ctx, []string{path}, "")
		if err != nil {
			rt.logger.Fatal("ingesting input", zap.Error(err))
		}
		if len(docs) == 0 {
			fields := []zap.Field{zap.String("path", path)}
			if len(rejected) > 0 {
				fields = append(fields, zap.String("step", rejected[0].Step), zap.Error(rejected[0].Err))
			}
			rt.logger.Fatal("nothing to compare", fields...)
		}

		result, err := rt.analyzeDocument(ctx, docs[0])
		if err != nil {
			rt.logger.Fatal("analyzing resume", zap.Error(err))
		}
		results = append(results, &result.Result)
	}

	comparison, err := analysis.Compare(results[0], results[1], time.Now().UTC())
	if err != nil {
		rt.logger.Fatal("comparing analyses", zap.Error(err))
	}

	if err := rt.writeReport(comparison, func(w io.Writer) { printComparison(w, comparison) }); err != nil {
		rt.logger.Fatal("writing report", zap.Error(err))
	}
}
