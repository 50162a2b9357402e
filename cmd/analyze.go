package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/audit"
	"github.com/c4soto/resumemate/internal/extractor"
	"github.com/c4soto/resumemate/internal/logger"
	"github.com/c4soto/resumemate/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Extract skills from a resume file and audit its readiness",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		analyze(args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyze(path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	text, extracted, err := analyzeFile(logger, path)
	if err != nil {
		logger.Fatal("analyzing resume", zap.String("file", path), zap.Error(err))
	}

	report := audit.Audit(text, extracted)

	pretty, _ := json.MarshalIndent(map[string]any{
		"skills": extracted,
		"count":  len(extracted),
		"audit":  report,
	}, "", "  ")
	fmt.Println(string(pretty))
}

// analyzeFile runs the extraction pipeline over a file on disk.
func analyzeFile(logger *zap.Logger, path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	text, err := extractor.New(logger).Extract(data, path)
	if err != nil {
		return "", nil, err
	}

	return text, skills.New().Extract(text), nil
}
