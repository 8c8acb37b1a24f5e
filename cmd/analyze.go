package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/enrich"
	"github.com/spigell/resume-analyzer/internal/logger"
)

const (
	PromptRecommendations = "Show recommendations"
	PromptSkills          = "Show detected skills"
	PromptInsights        = "Show insights"
	PromptExport          = "Export analysis to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var followUpPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptRecommendations, PromptSkills, PromptInsights, PromptExport, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Analyze one resume (plain text, markdown or stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("yes", "y", false, "do not show the follow-up menu")
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()
	rt := setup(ctx)

	docs, rejected, err := rt.ingestFiles(ctx, []string{path}, rt.config.ExcludeFile)
	if err != nil {
		rt.logger.Fatal("ingesting input", zap.Error(err))
	}
	if len(docs) == 0 {
		reason := "no input"
		if len(rejected) > 0 {
			reason = rejected[0].Err.Error()
		}
		rt.logger.Fatal("nothing to analyze", zap.String("reason", reason))
	}

	result, err := rt.analyzeDocument(ctx, docs[0])
	if err != nil {
		rt.logger.Fatal("analyzing resume", zap.Error(err))
	}

	rt.logger.Info("analysis completed",
		append(logger.AnalysisFields(result.Metadata.AnalysisID, result.Metadata.FileName),
			zap.Int("score", result.Overall.Score),
			zap.String("grade", result.Overall.Grade),
			zap.String("insights", result.Outcome.State.String()),
		)...,
	)

	if err := rt.render(result); err != nil {
		rt.logger.Fatal("writing report", zap.Error(err))
	}

	if rt.config.Output.Format == formatJSON || rt.config.Output.File != "" {
		return
	}
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return
	}

	for {
		_, action, err := followUpPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			rt.logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, os.Stdout, rt.logger, result); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			rt.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// render writes the report in the configured format.
func (r *runtime) render(result *enrich.Result) error {
	return r.writeReport(result, func(w io.Writer) { printReport(w, result) })
}

func handleAction(action string, w io.Writer, logger *zap.Logger, result *enrich.Result) error {
	switch action {
	case PromptRecommendations:
		printRecommendations(w, result.Recommendations)
		return nil
	case PromptSkills:
		printSkills(w, result.Skills)
		return nil
	case PromptInsights:
		printInsights(w, result)
		return nil
	case PromptExport:
		filename, err := exportToTmpFile(result)
		if err != nil {
			return fmt.Errorf("export analysis: %w", err)
		}
		logger.Info("exported analysis to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func exportToTmpFile(result *enrich.Result) (string, error) {
	data, err := analysis.Export(result.Metadata.FileName, result, time.Now().UTC())
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", app+"-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}

	return f.Name(), nil
}
