// Package cue alternates the visual variants of the station the train is near.
package cue

import (
	"sync/atomic"
	"time"

	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/loop"
)

const DefaultInterval = 700 * time.Millisecond

// VisualSink receives the alternating visual. The journey clock implements it.
type VisualSink interface {
	SetActiveVisual(index int, visual string) bool
}

// Driver runs its own timer between a station-enter and the following station-exit
// or journey-complete event. It never restores the default visual; the clock does
// that when the train leaves the station.
type Driver struct {
	stations  []journey.Station
	scheduler loop.Scheduler
	sink      VisualSink
	interval  time.Duration

	// OnToggle, when set, is called after every flip with the visual that was shown.
	OnToggle func(index int, visual string)

	timer  loop.Timer
	index  int
	toggle bool

	// active mirrors timer != nil for readers off the loop.
	active atomic.Bool
}

func NewDriver(stations []journey.Station, scheduler loop.Scheduler, sink VisualSink, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Driver{
		stations:  stations,
		scheduler: scheduler,
		sink:      sink,
		interval:  interval,
		index:     journey.NoStation,
	}
}

func (driver *Driver) OnJourneyEvent(event journey.Event) {
	switch event.Type {
	case journey.EventStationEnter:
		driver.Activate(event.StationIndex)
	case journey.EventStationExit, journey.EventJourneyComplete:
		driver.Deactivate()
	}
}

// Activate starts alternating for the station at index, cancelling any alternation
// already running for another station.
func (driver *Driver) Activate(index int) {
	driver.Deactivate()
	if index < 0 || index >= len(driver.stations) {
		return
	}

	driver.index = index
	driver.toggle = false
	driver.timer = driver.scheduler.Every(driver.interval, driver.flip)
	driver.active.Store(true)
}

// Deactivate cancels the alternation. It reports whether one was running.
func (driver *Driver) Deactivate() bool {
	if driver.timer == nil {
		return false
	}

	driver.active.Store(false)
	driver.timer.Stop()
	driver.timer = nil
	driver.index = journey.NoStation
	return true
}

// Active reports whether a station is being cued. It is safe from any goroutine.
func (driver *Driver) Active() bool {
	return driver.active.Load()
}

// StationIndex is the station being cued, or journey.NoStation. Loop only.
func (driver *Driver) StationIndex() int {
	return driver.index
}

func (driver *Driver) flip() {
	variants := driver.stations[driver.index].VisualVariants
	visual := variants[1]
	if driver.toggle {
		visual = variants[0]
	}
	driver.toggle = !driver.toggle

	driver.sink.SetActiveVisual(driver.index, visual)
	if driver.OnToggle != nil {
		driver.OnToggle(driver.index, visual)
	}
}
