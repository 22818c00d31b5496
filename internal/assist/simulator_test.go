package assist

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/loop"
	"tarediiran-industries.com/gap-assist/internal/route"
)

func newTestSimulator(t *testing.T, options Options) (*Simulator, *loop.Manual) {
	t.Helper()

	rt, err := route.Default()
	require.NoError(t, err)

	sched := loop.NewManual()
	sim, err := New(rt, sched, options)
	require.NoError(t, err)
	return sim, sched
}

func TestSimulatorRejectsInvalidRoute(t *testing.T) {
	rt, err := route.Default()
	require.NoError(t, err)
	rt.Journey.Stations = nil

	_, err = New(rt, loop.NewManual(), Options{})
	assert.ErrorIs(t, err, journey.ErrNoStations)
}

func TestSimulatorSnapshotAtManmad(t *testing.T) {
	sim, sched := newTestSimulator(t, Options{})
	sim.Start()

	sched.Advance(72*time.Second + 700*time.Millisecond)

	snapshot := sim.Snapshot(display.Primary)
	assert.Equal(t, "Manmad", snapshot.CurrentStationName)
	assert.True(t, snapshot.HazardActive)
	assert.Equal(t, "/hi2.svg", snapshot.ActiveVisual)
	assert.Equal(t, 40, snapshot.ProgressPercent)
	assert.True(t, sim.CueActive())
}

func TestSimulatorMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := common.NewMetrics(registry)
	sim, sched := newTestSimulator(t, Options{Metrics: metrics})
	sim.Start()

	sched.Advance(75 * time.Second)

	assert.Equal(t, 75.0, testutil.ToFloat64(metrics.JourneyTicksTotal))
	assert.Equal(t, 75.0, testutil.ToFloat64(metrics.JourneyElapsedSeconds))
	assert.Equal(t, 41.0, testutil.ToFloat64(metrics.JourneyProgressPercent))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.NearStationIndex))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HazardActive))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.JourneyEventsTotal.WithLabelValues("station-enter")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.JourneyEventsTotal.WithLabelValues("station-exit")))
	// Manmad cue runs from 72s: flips at 72.7, 73.4, 74.1, 74.8
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.CueTogglesTotal.WithLabelValues("Manmad")))

	sched.Advance(20 * time.Second)
	assert.Equal(t, -1.0, testutil.ToFloat64(metrics.NearStationIndex))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.HazardActive))
}

func TestSimulatorRestartsAfterDelay(t *testing.T) {
	sim, sched := newTestSimulator(t, Options{RestartDelay: 10 * time.Second})
	sim.Start()

	sched.Advance(181 * time.Second)
	assert.Equal(t, journey.PhaseComplete, sim.State().Phase)
	assert.Equal(t, 1, sched.Pending(), "only the restart timer is left")

	sched.Advance(10 * time.Second)
	assert.Equal(t, journey.PhaseRunning, sim.State().Phase)
	assert.Equal(t, 0, sim.State().ElapsedSeconds)

	sched.Advance(5 * time.Second)
	assert.Equal(t, 5, sim.State().ElapsedSeconds)
}

func TestSimulatorStopCancelsPendingRestart(t *testing.T) {
	sim, sched := newTestSimulator(t, Options{RestartDelay: 10 * time.Second})
	sim.Start()
	sched.Advance(185 * time.Second)

	assert.False(t, sim.Stop(), "journey already complete")
	assert.Zero(t, sched.Pending())

	sched.Advance(time.Minute)
	assert.Equal(t, journey.PhaseComplete, sim.State().Phase)
}

func TestSimulatorWithoutRestartStaysComplete(t *testing.T) {
	sim, sched := newTestSimulator(t, Options{})
	sim.Start()
	sched.Advance(10 * time.Minute)

	assert.Equal(t, journey.PhaseComplete, sim.State().Phase)
	assert.Zero(t, sched.Pending())
}

func TestSimulatorExtraSubscriber(t *testing.T) {
	sim, sched := newTestSimulator(t, Options{})

	var entered []int
	sim.Subscribe(journey.ListenerFunc(func(event journey.Event) {
		if event.Type == journey.EventStationEnter {
			entered = append(entered, event.StationIndex)
		}
	}))
	sim.Start()
	sched.Advance(3 * time.Minute)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, entered)
}
