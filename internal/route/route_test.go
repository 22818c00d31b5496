package route

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tarediiran-industries.com/gap-assist/internal/journey"
)

func TestDefaultRoute(t *testing.T) {
	route, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultName, route.Name)
	assert.Equal(t, 700*time.Millisecond, route.CueInterval)
	assert.Equal(t, language.English, route.Primary)
	assert.Equal(t, language.Hindi, route.Secondary)
	assert.True(t, route.DefaultSecondary, "the display opens in Hindi")
	assert.Equal(t, "Traveling", route.PrimaryLabels.Traveling)
	assert.Equal(t, "यात्रा में", route.SecondaryLabels.Traveling)

	cfg := route.Journey
	assert.Equal(t, 180, cfg.TotalDuration)
	assert.Equal(t, 10, cfg.StopDuration)
	assert.Equal(t, 5, cfg.ApproachWindow)
	assert.Equal(t, "/inj.svg", cfg.DefaultVisual)
	require.Len(t, cfg.Stations, 5)
	assert.Equal(t, 36, cfg.StationSpacing())

	manmad := cfg.Stations[2]
	assert.Equal(t, "Manmad", manmad.Name)
	assert.Equal(t, "मनमाड", manmad.LocalizedName)
	assert.Equal(t, journey.HazardHighRisk, manmad.HazardClass)
	assert.Equal(t, [2]string{"/hi1.svg", "/hi2.svg"}, manmad.VisualVariants)

	assert.Equal(t, "Nasik", route.StationName(4, false))
	assert.Equal(t, "नासिक", route.StationName(4, true))
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	route, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, route.Name)
}

const shortRoute = `
name = "short"
default_visual = "/bg.svg"
total_duration = 60
stop_duration = 0
approach_window = 0
cue_interval_ms = 250

[labels.primary]
traveling = "Traveling"
station = "Station"

[labels.secondary]
traveling = "En route"
station = "Gare"

[languages]
secondary = "fr"

[[stations]]
name = "First"
visuals = ["/a.svg", "/b.svg"]

[[stations]]
name = "Second"
hazard = "high-risk"
visuals = ["/c.svg", "/d.svg"]
`

func writeRoute(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "route.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCustomRoute(t *testing.T) {
	route, err := Load(writeRoute(t, shortRoute))
	require.NoError(t, err)

	assert.Equal(t, "short", route.Name)
	assert.Equal(t, 250*time.Millisecond, route.CueInterval)
	assert.Equal(t, language.French, route.Secondary)
	assert.Equal(t, language.English, route.Primary)
	assert.False(t, route.DefaultSecondary)

	cfg := route.Journey
	assert.Equal(t, 60, cfg.TotalDuration)
	assert.Zero(t, cfg.StopDuration, "explicit zero is kept")
	assert.Zero(t, cfg.ApproachWindow)
	assert.Equal(t, "First", cfg.Stations[0].LocalizedName, "localized name falls back to name")
	assert.Equal(t, journey.HazardNormal, cfg.Stations[0].HazardClass)
	assert.True(t, cfg.Stations[1].IsHighRisk())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("name = \"x\"\ntotal_durration = 10\n"))
	assert.ErrorContains(t, err, "total_durration")
}

func TestRouteValidation(t *testing.T) {
	tests := []struct {
		name     string
		edit     func(string) string
		expected string
	}{
		{
			"no stations",
			func(s string) string { return s[:strings.Index(s, "[[stations]]")] },
			journey.ErrNoStations.Error(),
		},
		{
			"unknown hazard",
			func(s string) string { return strings.Replace(s, `"high-risk"`, `"lava"`, 1) },
			`unknown hazard class "lava"`,
		},
		{
			"single visual",
			func(s string) string { return strings.Replace(s, `["/c.svg", "/d.svg"]`, `["/c.svg"]`, 1) },
			"needs exactly two visuals",
		},
		{
			"same languages",
			func(s string) string { return strings.Replace(s, `secondary = "fr"`, `secondary = "en"`, 1) },
			"primary and secondary languages are both en",
		},
		{
			"bad language",
			func(s string) string { return strings.Replace(s, `secondary = "fr"`, `secondary = "not a tag"`, 1) },
			`secondary language "not a tag"`,
		},
		{
			"missing labels",
			func(s string) string { return strings.Replace(s, `traveling = "En route"`, ``, 1) },
			"secondary labels need at least traveling and station",
		},
		{
			"unknown default language",
			func(s string) string { return strings.Replace(s, `secondary = "fr"`, "secondary = \"fr\"\ndefault = \"hi\"", 1) },
			`default language must be primary or secondary, got "hi"`,
		},
		{
			"negative cue interval",
			func(s string) string { return strings.Replace(s, `cue_interval_ms = 250`, `cue_interval_ms = -1`, 1) },
			"cue interval must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file, err := Decode(strings.NewReader(tc.edit(shortRoute)))
			require.NoError(t, err)

			_, err = file.Route()
			assert.ErrorContains(t, err, tc.expected)
		})
	}
}

func TestRouteNoStationsIsErrNoStations(t *testing.T) {
	_, err := File{DefaultVisual: "/bg.svg"}.Route()
	assert.ErrorIs(t, err, journey.ErrNoStations)
}
