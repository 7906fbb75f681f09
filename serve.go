package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhurtya/real-deal-server-side/auth"
	"github.com/abhurtya/real-deal-server-side/geocode"
	"github.com/abhurtya/real-deal-server-side/handlers"
	"github.com/abhurtya/real-deal-server-side/mailer"
	"github.com/abhurtya/real-deal-server-side/routes"
	"github.com/abhurtya/real-deal-server-side/sessions"
	"github.com/abhurtya/real-deal-server-side/utils"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	if err := a.redis.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable; sessions and geocode cache will fail until it is up", "addr", cfg.RedisAddr, "error", err)
	}
	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET is empty; Google login is disabled")
	}

	authService := auth.NewService(a.users, sessions.NewStore(a.redis, cfg.SessionTTL), logger)
	policy := utils.NewRetryPolicy(cfg.OutboundRetries, cfg.OutboundTimeout)
	dispatcher := mailer.NewDispatcher(mailer.NewSendGrid(cfg.SendGridAPIKey), cfg.MailFrom, cfg.MailTo, policy, logger)
	geocoder := geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeUserAgent, a.redis, cfg.GeocodeCacheTTL, policy, logger)

	e := routes.NewServer(cfg, logger, authService)
	routes.RegisterRoutes(e, routes.Controllers{
		Properties: handlers.NewPropertyController(a.propertyGateway()),
		News:       handlers.NewNewsController(a.newsGateway()),
		Auth:       handlers.NewAuthController(auth.NewGoogle(cfg), authService, cfg, logger),
		Geocode:    handlers.NewGeocodeController(geocoder, logger),
		Mail:       handlers.NewMailController(dispatcher),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := e.Shutdown(shutdownCtx)
		if closeErr := dispatcher.Close(shutdownCtx); closeErr != nil {
			logger.Error("pending emails dropped", "error", closeErr)
		}
		return err
	})
	return g.Wait()
}
