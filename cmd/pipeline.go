package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/ai/gemini"
	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/enrich"
	"github.com/spigell/resume-analyzer/internal/ingest"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/secrets"
)

// runtime holds what every analysis command needs.
type runtime struct {
	config   *Config
	logger   *zap.Logger
	analyzer *analysis.Analyzer
	enricher *enrich.Enricher
}

func setup(ctx context.Context) *runtime {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	var provider ai.Provider
	if config.AI.Enabled {
		p, err := newProvider(ctx, config.AI, logger)
		if err != nil {
			// The local generator covers a missing provider.
			logger.Warn("remote insights disabled",
				zap.String("reason", "provider_unavailable"),
				zap.Error(err),
			)
		} else {
			provider = p
		}
	}

	return &runtime{
		config:   config,
		logger:   logger,
		analyzer: analysis.New(logger),
		enricher: enrich.New(provider, config.AI.Timeout, logger),
	}
}

func newProvider(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Provider, error) {
	if cfg.Provider != ai.SourceGemini {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	return gemini.NewProvider(generator, logger, cfg.RequestsPerMinute, cfg.Gemini.MaxLogLength), nil
}

// ingestFiles loads paths and runs them through the ingestion steps.
func (r *runtime) ingestFiles(ctx context.Context, paths []string, excludeFile string) ([]*ingest.Document, []ingest.Rejection, error) {
	docs, rejected := ingest.LoadFiles(paths, os.Stdin)
	for _, rej := range rejected {
		r.logger.Info("document rejected",
			zap.String(logger.FieldFile, rej.Name),
			zap.String("step", rej.Step),
			zap.Error(rej.Err),
		)
	}

	kept, dropped, err := ingest.Run(ctx, r.logger, ingest.DefaultSteps(r.config.MinTextLength, excludeFile), docs)
	if err != nil {
		return nil, nil, err
	}

	return kept, append(rejected, dropped...), nil
}

// analyzeDocument runs the base pipeline and enrichment over one ingested document.
func (r *runtime) analyzeDocument(ctx context.Context, doc *ingest.Document) (*enrich.Result, error) {
	base, err := r.analyzer.Analyze(ctx, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", doc.Name, err)
	}
	attachSource(base, doc)

	return r.enricher.Enrich(ctx, doc.Text, base)
}

func attachSource(result *analysis.Result, doc *ingest.Document) {
	result.Metadata.FileName = doc.Name
	result.Metadata.TextLength = utf8.RuneCountInString(doc.Text)
	result.Metadata.OriginalTextLength = doc.OriginalLength
}

// output opens the report destination. The returned close func is always safe to call.
func (r *runtime) output() (io.Writer, func() error, error) {
	path := strings.TrimSpace(r.config.Output.File)
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	r.logger.Info("writing report to file", zap.String(logger.FieldFile, path))

	return f, f.Close, nil
}

// writeReport sends v to the configured destination as JSON, or through text otherwise.
// The destination is always closed; its close error is reported when the write succeeded.
func (r *runtime) writeReport(v any, text func(io.Writer)) (err error) {
	w, closeOut, err := r.output()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	if r.config.Output.Format == formatJSON {
		return writeJSON(w, v)
	}
	text(w)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
