package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/cosmic-portfolio/internal/analytics"
	"github.com/Zachkp/cosmic-portfolio/internal/clock"
	"github.com/Zachkp/cosmic-portfolio/internal/config"
	"github.com/Zachkp/cosmic-portfolio/internal/contact"
	"github.com/Zachkp/cosmic-portfolio/internal/content"
	"github.com/Zachkp/cosmic-portfolio/internal/logging"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
	"github.com/Zachkp/cosmic-portfolio/internal/visit"
	"github.com/Zachkp/cosmic-portfolio/internal/web"
)

const retentionInterval = time.Hour

func runServe(cmd *cobra.Command, flags serveFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode == "debug")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stats *analytics.Store
	if cfg.AnalyticsEnabled {
		stats, err = analytics.Open(ctx, cfg.AnalyticsDSN, cfg.AnalyticsSalt, clock.Real{}, logger.Named("analytics"))
		if err != nil {
			return fmt.Errorf("open analytics: %w", err)
		}
		defer func() { _ = stats.Close() }()
	}

	visits := visit.NewRegistry(clock.Real{}, cfg.VisitTTL, visit.Options{
		Splash: splash.Config{HandOffDelay: cfg.SplashHandOffDelay},
		Contact: contact.Options{
			SubmitDelay: cfg.ContactSubmitDelay,
			ResetDelay:  cfg.ContactResetDelay,
		},
		MaxVisits: cfg.MaxVisits,
	}, logger.Named("visit"))
	defer visits.Close()

	srv, err := web.New(web.Deps{
		Content:   store,
		Visits:    visits,
		Analytics: stats,
		Logger:    logger.Named("web"),
		Mode:      cfg.GinMode,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx, cfg.Addr()) })
	g.Go(func() error { return visits.Run(gctx, cfg.SweepInterval) })
	if stats != nil {
		g.Go(func() error { return stats.RunRetention(gctx, retentionInterval, cfg.AnalyticsRetention) })
	}

	logger.Info("portfolio started", zap.String("addr", cfg.Addr()), zap.Bool("analytics", stats != nil))
	if err := g.Wait(); err != nil {
		logger.Error("portfolio stopped", zap.Error(err))
		return err
	}
	logger.Info("portfolio stopped")
	return nil
}
