package journey

const NoStation = -1

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRunning   Phase = "running"
	PhaseComplete  Phase = "complete"
	PhaseCancelled Phase = "cancelled"
)

// State is the derived journey state. It is replaced as a whole on every tick.
type State struct {
	Phase               Phase
	ElapsedSeconds      int
	ProgressPercent     int
	CurrentStationIndex int
	IsNearStation       bool
	HazardActive        bool
	ActiveVisual        string
}

func InitialState(cfg Config) State {
	return State{
		Phase:               PhaseIdle,
		CurrentStationIndex: NoStation,
		ActiveVisual:        cfg.DefaultVisual,
	}
}

func (state State) Running() bool {
	return state.Phase == PhaseRunning
}

// Station returns the station the train is near, if any.
func (state State) Station(cfg Config) (Station, bool) {
	if !state.IsNearStation || state.CurrentStationIndex < 0 || state.CurrentStationIndex >= len(cfg.Stations) {
		return Station{}, false
	}
	return cfg.Stations[state.CurrentStationIndex], true
}

// Compute derives the state for elapsed seconds into the journey from the previous
// state. Only the active visual is carried over, and only while staying near the same
// station; the cue driver owns it from there.
func Compute(prev State, elapsed int, cfg Config) State {
	if elapsed > cfg.TotalDuration {
		return settle(prev, cfg, PhaseComplete)
	}

	next := State{
		Phase:               PhaseRunning,
		ElapsedSeconds:      elapsed,
		ProgressPercent:     elapsed * 100 / cfg.TotalDuration,
		CurrentStationIndex: NoStation,
		ActiveVisual:        cfg.DefaultVisual,
	}

	index := cfg.StationIndexAt(elapsed)
	if !cfg.Window(index).Contains(elapsed) {
		return next
	}

	next.IsNearStation = true
	next.CurrentStationIndex = index
	next.HazardActive = cfg.Stations[index].IsHighRisk()
	if prev.IsNearStation && prev.CurrentStationIndex == index && prev.ActiveVisual != "" {
		next.ActiveVisual = prev.ActiveVisual
	}
	return next
}

// StateAt is the state a running journey reaches after elapsed seconds.
func StateAt(cfg Config, elapsed int) State {
	if elapsed > cfg.TotalDuration {
		return Compute(StateAt(cfg, cfg.TotalDuration), elapsed, cfg)
	}
	return Compute(InitialState(cfg), elapsed, cfg)
}

// settle returns the traveling state a stopped journey rests in. The timeline keeps
// the last elapsed time and progress.
func settle(prev State, cfg Config, phase Phase) State {
	return State{
		Phase:               phase,
		ElapsedSeconds:      prev.ElapsedSeconds,
		ProgressPercent:     prev.ProgressPercent,
		CurrentStationIndex: NoStation,
		ActiveVisual:        cfg.DefaultVisual,
	}
}
