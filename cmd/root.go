package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-analyzer/internal/enrich"
	"github.com/spigell/resume-analyzer/internal/ingest"
)

const (
	app       = "resume-analyzer"
	envPrefix = "RESUME_ANALYZER"

	formatText = "text"
	formatJSON = "json"

	defaultRequestsPerMinute = 30
	defaultMaxLogLength      = 200
)

type Config struct {
	AI            *AIConfig     `mapstructure:"ai" validate:"required"`
	Output        *OutputConfig `mapstructure:"output" validate:"required"`
	MinTextLength int           `mapstructure:"min-text-length" validate:"gte=10"`
	ExcludeFile   string        `mapstructure:"exclude-file"`
}

type AIConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	Provider          string        `mapstructure:"provider" validate:"required,oneof=gemini"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RequestsPerMinute int           `mapstructure:"requests-per-minute" validate:"gte=0"`
	Gemini            *GeminiConfig `mapstructure:"gemini" validate:"required"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key" json:"-"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
	File   string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	validate = validator.New()

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-analyzer scores plain-text resumes and suggests how to improve them",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output", "o", "", "report format: text or json (default text)")
	rootCmd.PersistentFlags().Bool("ai", false, "enable the remote insight provider")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("ai.enabled", rootCmd.PersistentFlags().Lookup("ai"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.timeout", enrich.DefaultTimeout)
	v.SetDefault("ai.requests-per-minute", defaultRequestsPerMinute)
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.max-log-length", defaultMaxLogLength)
	v.SetDefault("output.format", formatText)
	v.SetDefault("min-text-length", ingest.DefaultMinTextLength)
}

func initConfig() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was asked for explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if config == nil {
		return nil, errors.New("config is required")
	}

	if config.Output != nil {
		config.Output.Format = strings.ToLower(strings.TrimSpace(config.Output.Format))
	}
	if config.AI != nil {
		config.AI.Provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
