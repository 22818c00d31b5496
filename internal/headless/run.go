package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"tarediiran-industries.com/gap-assist/internal/assist"
	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/loop"
	"tarediiran-industries.com/gap-assist/internal/route"
)

func Run(cfg Config, out io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Simulate(ctx, cfg, out); err != nil {
		log.Error().Err(err).Msg("Simulation failed")
		return -1
	}

	fmt.Fprintln(out, "Finished.")
	return 0
}

// Simulate runs journeys in real time until ctx is cancelled or, without a repeat
// delay, until the first journey completes.
func Simulate(ctx context.Context, cfg Config, out io.Writer) error {
	rt, err := route.Load(cfg.TomlConfigPath)
	if err != nil {
		return err
	}

	var metrics *common.Metrics
	if cfg.MetricsAddress != "" {
		telemetry := common.NewTelemetryServer(cfg.MetricsAddress)
		metrics = common.NewMetrics(telemetry.GetRegistry())
		if err := telemetry.Start(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
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

	lang, ok := sim.Localizer().Parse(cfg.Language)
	if !ok {
		return fmt.Errorf("unknown language %q for route %s", cfg.Language, rt.Name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !cfg.Quiet {
		sim.Subscribe(&StatusPrinter{out: out, localizer: sim.Localizer(), lang: lang})
	}
	if cfg.FeedDirectory != "" {
		publisher, err := NewFeedPublisher(cfg.FeedDirectory, rt)
		if err != nil {
			return err
		}
		sim.Subscribe(publisher)
	}
	if cfg.RestartDelay == 0 {
		sim.Subscribe(journey.ListenerFunc(func(event journey.Event) {
			if event.Type == journey.EventJourneyComplete {
				cancel()
			}
		}))
	}

	eventLoop.Post(sim.Start)

	err = eventLoop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// StatusPrinter writes one line per tick, a text rendition of the display.
type StatusPrinter struct {
	out       io.Writer
	localizer *display.Localizer
	lang      display.Language
}

func (printer *StatusPrinter) OnJourneyEvent(event journey.Event) {
	if event.Type != journey.EventTick {
		return
	}

	snapshot := printer.localizer.Build(event.State, printer.lang)
	fmt.Fprintln(printer.out, FormatStatus(snapshot))
}

func FormatStatus(snapshot display.Snapshot) string {
	line := fmt.Sprintf("[%3ds %3d%%] %s", snapshot.ElapsedSeconds, snapshot.ProgressPercent, snapshot.Headline)
	if snapshot.GapWarning != "" {
		marker := "!"
		if snapshot.HazardActive {
			marker = "!!!"
		}
		line += fmt.Sprintf(" %s %s %s", marker, snapshot.GapWarning, marker)
	}
	return line + " (" + snapshot.ActiveVisual + ")"
}
