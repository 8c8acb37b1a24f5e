package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/ingest"
	"github.com/spigell/resume-analyzer/internal/samples"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Work with the bundled sample resumes",
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the bundled sample resumes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := samples.List()
		if err != nil {
			return err
		}
		for _, s := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-20s expected ~%d  %s\n", s.ID, s.Title, s.ExpectedScore, s.Description)
		}
		return nil
	},
}

var samplesAnalyzeCmd = &cobra.Command{
	Use:       "analyze id",
	Short:     "Analyze one of the bundled sample resumes",
	Args:      cobra.ExactArgs(1),
	ValidArgs: samples.IDs(),
	Run: func(_ *cobra.Command, args []string) {
		analyzeSample(args[0])
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
	samplesCmd.AddCommand(samplesListCmd, samplesAnalyzeCmd)
}

func analyzeSample(id string) {
	ctx := context.Background()
	rt := setup(ctx)

	sample, err := samples.Get(id)
	if err != nil {
		rt.logger.Fatal("loading sample", zap.Error(err))
	}

	docs, _, err := ingest.Run(ctx, rt.logger, []ingest.Filter{ingest.NewNormalize()},
		[]*ingest.Document{ingest.FromText(sample.FileName(), sample.Text)})
	if err != nil || len(docs) == 0 {
		rt.logger.Fatal("preparing sample", zap.String("sample", sample.ID), zap.Error(err))
	}

	result, err := rt.analyzeDocument(ctx, docs[0])
	if err != nil {
		rt.logger.Fatal("analyzing sample", zap.Error(err))
	}

	rt.logger.Info("sample analyzed",
		zap.String("sample", sample.ID),
		zap.Int("score", result.Overall.Score),
		zap.Int("expected_score", sample.ExpectedScore),
	)

	if err := rt.render(result); err != nil {
		rt.logger.Fatal("writing report", zap.Error(err))
	}
	// keep stdout clean for piping; the hint goes to stderr
	if rt.config.Output.Format != formatJSON {
		fmt.Fprintln(os.Stderr, "Run `"+app+" analyze <file>` to score your own resume.")
	}
}
