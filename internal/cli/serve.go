package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/uniprep.git/internal/bot"
	"github.com/DanRulev/uniprep.git/internal/client"
	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/httpapi"
	"github.com/DanRulev/uniprep.git/internal/repository"
	"github.com/DanRulev/uniprep.git/internal/scheduler"
	"github.com/DanRulev/uniprep.git/internal/service"
	"github.com/DanRulev/uniprep.git/internal/storage/cache"
	"github.com/DanRulev/uniprep.git/internal/storage/db"
	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the Telegram bot and review reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, conn, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer conn.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if migrate {
				if err := db.Migrate(ctx, conn); err != nil {
					return err
				}
			}

			return serve(ctx, cfg, conn, logger)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, conn *sqlx.DB, logger *zap.Logger) error {
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is required to serve HTTP", validator.ErrInvalid)
	}

	repos := repository.NewRepository(conn)
	clients := client.InitClients(cfg.AI)
	services := service.InitServices(clients, repos, cfg, logger)

	if cfg.BotToken != "" {
		tg, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache.NewCache(), logger)
		if err != nil {
			return fmt.Errorf("init telegram bot: %w", err)
		}
		go tg.Start(ctx)

		reminders := scheduler.New(services.ReminderS, tg, cfg.Reminder, logger)
		if err := reminders.Start(); err != nil {
			return err
		}
		defer reminders.Stop()
	} else {
		logger.Info("bot token is empty, telegram bot and reminders are disabled")
	}

	handler := httpapi.NewHandler(services, cfg.App.Timeout, logger)

	return httpapi.NewServer(cfg.HTTP, handler.Routes(), logger).Run(ctx)
}
