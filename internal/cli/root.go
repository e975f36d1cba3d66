package cli

import (
	"fmt"
	"os"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "uniprep",
		Short: "Exam preparation backend with SM-2 spaced repetition",
		Long: `Uniprep serves flashcard reviews scheduled with SM-2, tracks per-subject
progress and builds study plans, over HTTP and a Telegram bot.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newImportCmd(),
		newPlanCmd(),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// bootstrap loads the config and opens the database every command needs.
func bootstrap() (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("failed init db: %w", err)
	}

	return cfg, logger, conn, nil
}
