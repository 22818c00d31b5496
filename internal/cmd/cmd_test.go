package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarediiran-industries.com/gap-assist/internal/journey"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCmd(&AssistCtlApp{})
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), err
}

func TestStationsCmd(t *testing.T) {
	out, err := execute(t, "stations")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "HAZARD")
	assert.Contains(t, lines[3], "MMR")
	assert.Contains(t, lines[3], "high-risk")
	assert.Contains(t, lines[3], "67s-87s")
	assert.Contains(t, lines[1], "0s-15s")
}

func TestStateCmd(t *testing.T) {
	out, err := execute(t, "state", "--at", "72")
	require.NoError(t, err)

	assert.Contains(t, out, `"headline": "Manmad Station"`)
	assert.Contains(t, out, `"hazardActive": true`)
	assert.Contains(t, out, `"progressPercent": 40`)

	out, err = execute(t, "state", "--at", "72", "--lang", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, `"headline": "मनमाड स्टेशन"`)

	out, err = execute(t, "state", "--at", "181")
	require.NoError(t, err)
	assert.Contains(t, out, `"phase": "complete"`)
	assert.Contains(t, out, `"currentStationName": "Traveling"`)
}

func TestStateCmdRejectsBadInput(t *testing.T) {
	_, err := execute(t, "state", "--at", "-1")
	assert.ErrorContains(t, err, "--at must not be negative")

	_, err = execute(t, "state", "--lang", "fr")
	assert.ErrorContains(t, err, `unknown language "fr"`)
}

func TestTimelineCmd(t *testing.T) {
	out, err := execute(t, "timeline")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "   0s   0%  journey-start", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "   0s   0%  station-enter    Amravati", lines[1])
	assert.Contains(t, out, "  72s  40%  station-enter    Manmad (hazard)")
	assert.Contains(t, out, " 160s  88%  station-exit     Nasik")
	assert.Equal(t, " 180s 100%  journey-complete", lines[11])
	assert.Equal(t, "12 events over 181s of journey", lines[12])
}

func TestTimelineCmdWithTicks(t *testing.T) {
	out, err := execute(t, "timeline", "--ticks", "--lang", "secondary")
	require.NoError(t, err)

	assert.Contains(t, out, "192 events over 181s of journey")
	assert.Contains(t, out, "  73s  40%  tick             near मनमाड")
}

func TestFeedCmd(t *testing.T) {
	out, err := execute(t, "feed", "--at", "75")
	require.NoError(t, err)
	assert.Regexp(t, `"stopId":\s+"MMR"`, out)
	assert.Regexp(t, `"currentStatus":\s+"STOPPED_AT"`, out)

	out, err = execute(t, "feed", "--kind", "alerts", "--at", "40")
	require.NoError(t, err)
	assert.Regexp(t, `"gtfsRealtimeVersion":\s+"2.0"`, out)
	assert.NotContains(t, out, "entity")

	_, err = execute(t, "feed", "--kind", "trip-updates")
	assert.ErrorContains(t, err, `unknown feed "trip-updates"`)
}

func TestFeedCmdRejectsNegativeTime(t *testing.T) {
	out, err := execute(t, "feed", "--at", "-5")
	assert.ErrorContains(t, err, "--at must not be negative")
	assert.Empty(t, out)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)

	assert.Equal(t,
		"route amravati-nasik: 5 stations, 180s total, 36s spacing, 10s stops, 5s approach, cue every 700ms (en/hi)\n",
		out)
}

func TestValidateCmdReportsBrokenRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "empty"
default_visual = "/inj.svg"

[labels.primary]
traveling = "Traveling"
station = "Station"

[labels.secondary]
traveling = "यात्रा में"
station = "स्टेशन"
`), 0o644))

	_, err := execute(t, "--toml", path, "validate")
	assert.ErrorIs(t, err, journey.ErrNoStations)

	_, err = execute(t, "--toml", filepath.Join(t.TempDir(), "missing.toml"), "validate")
	assert.Error(t, err)
}
