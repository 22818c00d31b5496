package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsDefaultRoute(t *testing.T) {
	require.NoError(t, testConfig().Validate())
}

func TestValidateRejectsEmptyStationList(t *testing.T) {
	cfg := testConfig()
	cfg.Stations = nil

	assert.ErrorIs(t, cfg.Validate(), ErrNoStations)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := testConfig()
	cfg.TotalDuration = 0
	cfg.StopDuration = -1
	cfg.DefaultVisual = ""
	cfg.Stations[1].Name = ""
	cfg.Stations[2].HazardClass = "explosive"
	cfg.Stations[3].VisualVariants[1] = ""
	cfg.Stations[4].ID = "AMI"

	err := cfg.Validate()
	require.Error(t, err)

	for _, fragment := range []string{
		"total duration must be positive",
		"stop duration must not be negative",
		"default visual is required",
		"station 1: name is required",
		`station 2: unknown hazard class "explosive"`,
		"station 3: two visual variants are required",
		`station 4: id "AMI" already used by station 0`,
	} {
		assert.Contains(t, err.Error(), fragment)
	}
}

func TestValidateRejectsDurationShorterThanStationCount(t *testing.T) {
	cfg := testConfig()
	cfg.TotalDuration = 4

	assert.ErrorContains(t, cfg.Validate(), "shorter than one second per station")
}

func TestWindows(t *testing.T) {
	cfg := testConfig()
	require.Equal(t, 36, cfg.StationSpacing())

	tests := []struct {
		index    int
		expected Window
	}{
		{0, Window{Arrival: 0, Departure: 10, NearStart: 0, NearEnd: 15}},
		{1, Window{Arrival: 36, Departure: 46, NearStart: 31, NearEnd: 51}},
		{2, Window{Arrival: 72, Departure: 82, NearStart: 67, NearEnd: 87}},
		{4, Window{Arrival: 144, Departure: 154, NearStart: 139, NearEnd: 159}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, cfg.Window(tc.index), "station %d", tc.index)
	}
}

func TestWindowEndIsPinnedToTotalDuration(t *testing.T) {
	cfg := testConfig()
	cfg.StopDuration = 40

	assert.Equal(t, 180, cfg.Window(4).NearEnd)
}

func TestStationIndexAtClampsToLastStation(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, 0, cfg.StationIndexAt(35))
	assert.Equal(t, 1, cfg.StationIndexAt(36))
	assert.Equal(t, 4, cfg.StationIndexAt(144))
	assert.Equal(t, 4, cfg.StationIndexAt(180))
	assert.Equal(t, 4, cfg.StationIndexAt(500))
}

func TestParseHazardClass(t *testing.T) {
	class, err := ParseHazardClass("high-risk")
	require.NoError(t, err)
	assert.Equal(t, HazardHighRisk, class)

	class, err = ParseHazardClass("")
	require.NoError(t, err)
	assert.Equal(t, HazardNormal, class)

	_, err = ParseHazardClass("HIGH")
	assert.Error(t, err)
}
