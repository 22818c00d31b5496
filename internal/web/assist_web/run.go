package assist_web

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tarediiran-industries.com/gap-assist/internal/assist"
	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/loop"
	"tarediiran-industries.com/gap-assist/internal/route"
)

func Run(cfg Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Serve(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("Display server failed")
		return -1
	}
	return 0
}

// Serve runs the journey loop and the display server until ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	rt, err := route.Load(cfg.TomlConfigPath)
	if err != nil {
		return err
	}

	var metrics *common.Metrics
	if cfg.MetricsAddress != "" {
		telemetry := common.NewTelemetryServer(cfg.MetricsAddress)
		metrics = common.NewMetrics(telemetry.GetRegistry())
		if err := telemetry.Start(); err != nil {
			return err
		}
		defer telemetry.Stop()
	}

	eventLoop := loop.New()
	sim, err := assist.New(rt, eventLoop, assist.Options{
		Metrics:      metrics,
		RestartDelay: cfg.RestartDelay,
	})
	if err != nil {
		return err
	}

	options := ServerOptions{
		PollInterval:   cfg.PollInterval,
		AllowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.AssetsDir != "" {
		options.Assets = os.DirFS(cfg.AssetsDir)
	}

	server, err := NewAssistWebServer(cfg.ListenAddress, sim, eventLoop, options)
	if err != nil {
		return err
	}

	if cfg.AutoStart {
		eventLoop.Post(sim.Start)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return eventLoop.Run(ctx)
	})
	group.Go(func() error {
		return server.Serve(ctx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
