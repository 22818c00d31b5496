package journey

import (
	"fmt"
	"sync"

	"tarediiran-industries.com/gap-assist/internal/loop"
)

// Clock owns the elapsed time of a journey and publishes its state transitions.
//
// Start, Stop, SetActiveVisual and every tick must run on the scheduler's loop.
// State may be read from any goroutine.
type Clock struct {
	cfg       Config
	scheduler loop.Scheduler

	mu    sync.RWMutex
	state State

	ticker    loop.Timer
	listeners []Listener
}

func NewClock(cfg Config, scheduler loop.Scheduler) (*Clock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid journey configuration: %w", err)
	}

	return &Clock{
		cfg:       cfg,
		scheduler: scheduler,
		state:     InitialState(cfg),
	}, nil
}

func (clock *Clock) Config() Config {
	return clock.cfg
}

// Subscribe registers a listener. Listeners are notified synchronously, in
// subscription order.
func (clock *Clock) Subscribe(listener Listener) {
	clock.listeners = append(clock.listeners, listener)
}

func (clock *Clock) State() State {
	clock.mu.RLock()
	defer clock.mu.RUnlock()
	return clock.state
}

// Start begins a fresh journey at elapsed zero, abandoning any journey in progress.
func (clock *Clock) Start() {
	clock.cancelTicker()

	prev := clock.State()
	next := Compute(InitialState(clock.cfg), 0, clock.cfg)
	clock.replace(next)
	clock.ticker = clock.scheduler.Every(TickInterval, clock.tick)

	clock.emit(Event{Type: EventJourneyStart, StationIndex: NoStation, State: next})
	clock.emit(transitions(prev, next)...)
}

// Stop cancels a running journey without reporting completion. It returns false
// when no journey was running.
func (clock *Clock) Stop() bool {
	if !clock.State().Running() {
		return false
	}

	clock.halt(PhaseCancelled)
	return true
}

// SetActiveVisual replaces the visual shown for the station the train is near. It is
// ignored unless index is still the current station.
func (clock *Clock) SetActiveVisual(index int, visual string) bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if !clock.state.IsNearStation || clock.state.CurrentStationIndex != index {
		return false
	}
	clock.state.ActiveVisual = visual
	return true
}

func (clock *Clock) tick() {
	prev := clock.State()
	if !prev.Running() {
		return
	}

	elapsed := prev.ElapsedSeconds + 1
	if elapsed > clock.cfg.TotalDuration {
		clock.halt(PhaseComplete)
		return
	}

	next := Compute(prev, elapsed, clock.cfg)
	clock.replace(next)

	clock.emit(transitions(prev, next)...)
	clock.emit(Event{Type: EventTick, StationIndex: NoStation, State: next})
}

func (clock *Clock) halt(phase Phase) {
	clock.cancelTicker()

	prev := clock.State()
	next := settle(prev, clock.cfg, phase)
	clock.replace(next)

	clock.emit(transitions(prev, next)...)
	if phase == PhaseComplete {
		clock.emit(Event{Type: EventJourneyComplete, StationIndex: NoStation, State: next})
	}
}

func (clock *Clock) cancelTicker() {
	if clock.ticker != nil {
		clock.ticker.Stop()
		clock.ticker = nil
	}
}

func (clock *Clock) replace(next State) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	// The cue driver may have replaced the visual since prev was read.
	if next.IsNearStation && clock.state.IsNearStation && clock.state.CurrentStationIndex == next.CurrentStationIndex {
		next.ActiveVisual = clock.state.ActiveVisual
	}
	clock.state = next
}

func (clock *Clock) emit(events ...Event) {
	for _, event := range events {
		for _, listener := range clock.listeners {
			listener.OnJourneyEvent(event)
		}
	}
}
