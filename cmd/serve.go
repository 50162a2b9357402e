package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/logger"
	"github.com/c4soto/resumemate/internal/server"
	"github.com/c4soto/resumemate/internal/skills"
	"github.com/c4soto/resumemate/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume analysis HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default is :8000)")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve(_ *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	listen := viper.GetString("listen")
	if listen == "" {
		listen = config.Listen
	}

	logger.Info("starting resumemate", zap.String("version", version))

	api := server.New(
		logger,
		skills.New(),
		store.NewMemory(config.StoreTTL),
		newJobSearch(config, logger),
		newLetterGenerator(ctx, config, logger),
	)

	if err := api.Run(ctx, listen); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}

	logger.Info("shut down cleanly")
}
