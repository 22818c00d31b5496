package journey

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTotalDuration  = 180
	DefaultStopDuration   = 10
	DefaultApproachWindow = 5

	TickInterval = time.Second
)

var ErrNoStations = errors.New("station list is empty")

// Config fixes the shape of a journey. Durations are whole seconds.
type Config struct {
	Stations      []Station
	DefaultVisual string

	TotalDuration  int
	StopDuration   int
	ApproachWindow int
}

func (cfg Config) Validate() error {
	if len(cfg.Stations) == 0 {
		return ErrNoStations
	}

	var errs []error
	if cfg.TotalDuration <= 0 {
		errs = append(errs, fmt.Errorf("total duration must be positive, got %d", cfg.TotalDuration))
	} else if cfg.TotalDuration < len(cfg.Stations) {
		errs = append(errs, fmt.Errorf("total duration %ds is shorter than one second per station (%d stations)", cfg.TotalDuration, len(cfg.Stations)))
	}
	if cfg.StopDuration < 0 {
		errs = append(errs, fmt.Errorf("stop duration must not be negative, got %d", cfg.StopDuration))
	}
	if cfg.ApproachWindow < 0 {
		errs = append(errs, fmt.Errorf("approach window must not be negative, got %d", cfg.ApproachWindow))
	}
	if cfg.DefaultVisual == "" {
		errs = append(errs, errors.New("default visual is required"))
	}

	seenIds := map[string]int{}
	for i, station := range cfg.Stations {
		if station.Name == "" {
			errs = append(errs, fmt.Errorf("station %d: name is required", i))
		}
		if _, err := ParseHazardClass(string(station.HazardClass)); err != nil {
			errs = append(errs, fmt.Errorf("station %d: %w", i, err))
		}
		if station.VisualVariants[0] == "" || station.VisualVariants[1] == "" {
			errs = append(errs, fmt.Errorf("station %d: two visual variants are required", i))
		}
		if station.ID != "" {
			if first, ok := seenIds[station.ID]; ok {
				errs = append(errs, fmt.Errorf("station %d: id %q already used by station %d", i, station.ID, first))
			}
			seenIds[station.ID] = i
		}
	}

	return errors.Join(errs...)
}

// StationSpacing is the scheduled time between two consecutive arrivals.
func (cfg Config) StationSpacing() int {
	return cfg.TotalDuration / len(cfg.Stations)
}

// StationIndexAt maps elapsed time to the station whose portion of the journey it
// falls in. Past the last arrival it stays on the last station.
func (cfg Config) StationIndexAt(elapsed int) int {
	return min(elapsed/cfg.StationSpacing(), len(cfg.Stations)-1)
}

// Window is the schedule of a single station, in elapsed seconds.
type Window struct {
	Arrival   int
	Departure int
	NearStart int
	NearEnd   int
}

func (cfg Config) Window(index int) Window {
	arrival := index * cfg.StationSpacing()
	departure := arrival + cfg.StopDuration
	return Window{
		Arrival:   arrival,
		Departure: departure,
		NearStart: max(arrival-cfg.ApproachWindow, 0),
		NearEnd:   min(departure+cfg.ApproachWindow, cfg.TotalDuration),
	}
}

func (window Window) Contains(elapsed int) bool {
	return window.NearStart <= elapsed && elapsed <= window.NearEnd
}
