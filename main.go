package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhurtya/real-deal-server-side/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "real-deal",
		Short: "Real estate listing backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(os.Stderr, "No .env file found, using system environment variables")
			}
			cfg = config.Load()
			logger = newLogger(cfg.LogLevel)
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(newServeCommand(), newSeedCommand(), newPromoteCommand())
	return root
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
