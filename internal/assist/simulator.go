// Package assist wires the journey clock, the proximity cue and their observers into
// one simulator.
package assist

import (
	"time"

	"github.com/rs/zerolog/log"

	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/cue"
	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/loop"
	"tarediiran-industries.com/gap-assist/internal/route"
)

type Options struct {
	// Metrics is optional.
	Metrics *common.Metrics

	// RestartDelay, when positive, starts a new journey that long after one completes.
	RestartDelay time.Duration
}

// Simulator must be driven from the scheduler's loop, except for State, Snapshot and
// the accessors, which are safe from any goroutine.
type Simulator struct {
	route     route.Route
	scheduler loop.Scheduler
	options   Options

	clock     *journey.Clock
	cue       *cue.Driver
	localizer *display.Localizer

	restart loop.Timer
}

func New(rt route.Route, scheduler loop.Scheduler, options Options) (*Simulator, error) {
	clock, err := journey.NewClock(rt.Journey, scheduler)
	if err != nil {
		return nil, err
	}

	sim := &Simulator{
		route:     rt,
		scheduler: scheduler,
		options:   options,
		clock:     clock,
		cue:       cue.NewDriver(rt.Journey.Stations, scheduler, clock, rt.CueInterval),
		localizer: display.NewLocalizer(rt),
	}

	// The cue driver goes first so its timer is gone before anyone else reacts.
	clock.Subscribe(sim.cue)
	clock.Subscribe(journey.ListenerFunc(sim.logEvent))
	if options.Metrics != nil {
		observer := &metricsObserver{metrics: options.Metrics}
		clock.Subscribe(observer)
		sim.cue.OnToggle = func(index int, _ string) {
			options.Metrics.CueTogglesTotal.WithLabelValues(rt.Journey.Stations[index].Name).Inc()
		}
	}
	if options.RestartDelay > 0 {
		clock.Subscribe(journey.ListenerFunc(sim.scheduleRestart))
	}

	return sim, nil
}

func (sim *Simulator) Route() route.Route {
	return sim.route
}

func (sim *Simulator) Localizer() *display.Localizer {
	return sim.localizer
}

// Subscribe adds a listener after the built-in ones.
func (sim *Simulator) Subscribe(listener journey.Listener) {
	sim.clock.Subscribe(listener)
}

func (sim *Simulator) State() journey.State {
	return sim.clock.State()
}

func (sim *Simulator) Snapshot(lang display.Language) display.Snapshot {
	return sim.localizer.Build(sim.clock.State(), lang)
}

func (sim *Simulator) CueActive() bool {
	return sim.cue.Active()
}

// Start begins a new journey, replacing a running one or a pending restart.
func (sim *Simulator) Start() {
	sim.cancelRestart()
	sim.clock.Start()
}

// Stop cancels the running journey and any pending restart. It reports whether a
// journey was running.
func (sim *Simulator) Stop() bool {
	sim.cancelRestart()
	return sim.clock.Stop()
}

func (sim *Simulator) scheduleRestart(event journey.Event) {
	if event.Type != journey.EventJourneyComplete {
		return
	}

	sim.cancelRestart()
	log.Info().Dur("delay", sim.options.RestartDelay).Msg("Journey restart scheduled")
	sim.restart = sim.scheduler.AfterFunc(sim.options.RestartDelay, sim.Start)
}

func (sim *Simulator) cancelRestart() {
	if sim.restart != nil {
		sim.restart.Stop()
		sim.restart = nil
	}
}

func (sim *Simulator) logEvent(event journey.Event) {
	state := event.State

	switch event.Type {
	case journey.EventTick:
		log.Debug().
			Int("elapsed", state.ElapsedSeconds).
			Int("progress", state.ProgressPercent).
			Bool("near", state.IsNearStation).
			Bool("hazard", state.HazardActive).
			Msg("Tick")

	case journey.EventJourneyStart:
		log.Info().
			Str("route", sim.route.Name).
			Int("stations", len(sim.route.Journey.Stations)).
			Int("duration", sim.route.Journey.TotalDuration).
			Msg("Journey started")

	case journey.EventStationEnter:
		station := sim.route.Journey.Stations[event.StationIndex]
		log.Info().
			Str("station", station.Name).
			Int("index", event.StationIndex).
			Int("elapsed", state.ElapsedSeconds).
			Bool("hazard", state.HazardActive).
			Msg("Approaching station")

	case journey.EventStationExit:
		station := sim.route.Journey.Stations[event.StationIndex]
		log.Info().
			Str("station", station.Name).
			Int("index", event.StationIndex).
			Int("elapsed", state.ElapsedSeconds).
			Msg("Left station")

	case journey.EventJourneyComplete:
		log.Info().
			Str("route", sim.route.Name).
			Int("elapsed", state.ElapsedSeconds).
			Msg("Journey complete")
	}
}

type metricsObserver struct {
	metrics *common.Metrics
}

func (observer *metricsObserver) OnJourneyEvent(event journey.Event) {
	metrics := observer.metrics
	state := event.State

	if event.Type == journey.EventTick {
		metrics.JourneyTicksTotal.Inc()
	} else {
		metrics.JourneyEventsTotal.WithLabelValues(string(event.Type)).Inc()
	}

	metrics.JourneyElapsedSeconds.Set(float64(state.ElapsedSeconds))
	metrics.JourneyProgressPercent.Set(float64(state.ProgressPercent))
	metrics.NearStationIndex.Set(float64(state.CurrentStationIndex))
	if state.HazardActive {
		metrics.HazardActive.Set(1)
	} else {
		metrics.HazardActive.Set(0)
	}
}
