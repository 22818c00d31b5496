package headless

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs("assist-sim", nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "primary", cfg.Language)
	assert.Zero(t, cfg.RestartDelay)
	assert.Empty(t, cfg.TomlConfigPath)
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := ParseArgs("assist-sim", []string{"-lang", "hi", "-repeat", "30s", "-quiet", "-metrics", ":9100"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "hi", cfg.Language)
	assert.Equal(t, 30*time.Second, cfg.RestartDelay)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, ":9100", cfg.MetricsAddress)
}

func TestParseArgsRejectsNegativeRepeat(t *testing.T) {
	_, err := ParseArgs("assist-sim", []string{"-repeat", "-1s"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "must not be negative")
}

func TestParseArgsVersion(t *testing.T) {
	errOut := &bytes.Buffer{}
	_, err := ParseArgs("assist-sim", []string{"-version"}, errOut)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, errOut.String(), "assist-sim: version dev")
}

func TestMainReportsBadFlags(t *testing.T) {
	errOut := &bytes.Buffer{}
	code := Main("assist-sim", []string{"-no-such-flag"}, &bytes.Buffer{}, errOut)

	assert.Equal(t, -1, code)
	assert.Contains(t, errOut.String(), "Error:")
}
