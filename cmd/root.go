package cmd

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/headhunter"
	"github.com/c4soto/resumemate/internal/jobsearch"
	"github.com/c4soto/resumemate/internal/letters"
	"github.com/c4soto/resumemate/internal/secrets"
)

const (
	app = "resumemate"

	defaultListen   = ":8000"
	defaultStoreTTL = 24 * time.Hour
)

type Config struct {
	Listen     string            `mapstructure:"listen"`
	StoreTTL   time.Duration     `mapstructure:"store-ttl"`
	UserAgent  string            `mapstructure:"user-agent"`
	HeadHunter *HeadHunterConfig `mapstructure:"headhunter"`
	AI         *AIConfig         `mapstructure:"ai"`
}

type HeadHunterConfig struct {
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token-file"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resumemate analyzes resumes and finds matching vacancies on hh.ru",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	_ = godotenv.Load()

	if err := viper.BindEnv("headhunter.token-file", "HH_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HH_TOKEN_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resumemate.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional. Everything has a default and secrets can
	// come from the environment. A file that exists but cannot be parsed is
	// still fatal.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			log.Fatal(err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Listen == "" {
		config.Listen = defaultListen
	}
	if config.StoreTTL == 0 {
		config.StoreTTL = defaultStoreTTL
	}

	return config, nil
}

// newJobSearch wires the job search service. Without a configured hh.ru
// token the external source is left out and searches are served from the
// fixture set.
func newJobSearch(config *Config, logger *zap.Logger) *jobsearch.Service {
	var external jobsearch.Source

	if token, err := resolveHHToken(config); err == nil {
		client := headhunter.New(logger, token)
		if config.UserAgent != "" {
			client.UserAgent = config.UserAgent
		}
		external = jobsearch.NewHeadHunterSource(client)
	} else {
		logger.Debug("external job source disabled", zap.Error(err))
	}

	return jobsearch.NewService(external, logger)
}

// newLetterGenerator picks the Gemini generator when an API key is
// configured and the static template otherwise.
func newLetterGenerator(ctx context.Context, config *Config, logger *zap.Logger) letters.Generator {
	if config.AI == nil || config.AI.Gemini == nil {
		return letters.NewTemplateGenerator()
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.AI.Gemini.APIKey,
		File:  config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		logger.Debug("gemini letter generator disabled", zap.Error(err))
		return letters.NewTemplateGenerator()
	}

	generator, err := letters.NewGeminiGenerator(ctx, apiKey, config.AI.Gemini.Model, logger)
	if err != nil {
		logger.Warn("falling back to template letters", zap.Error(err))
		return letters.NewTemplateGenerator()
	}

	return generator
}

func resolveHHToken(config *Config) (string, error) {
	hh := config.HeadHunter
	if hh == nil {
		hh = &HeadHunterConfig{}
	}

	tokenFile := hh.TokenFile
	if tokenFile == "" {
		tokenFile = viper.GetString("headhunter.token-file")
	}

	return secrets.Load(secrets.Source{
		Name:  "headhunter token",
		Value: hh.Token,
		File:  tokenFile,
	})
}
