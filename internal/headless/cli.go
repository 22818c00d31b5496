package headless

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"tarediiran-industries.com/gap-assist/internal/common"
)

type Config struct {
	Version        bool
	TomlConfigPath string
	MetricsAddress string
	Language       string
	Quiet          bool
	FeedDirectory  string

	// Zero runs a single journey and exits.
	RestartDelay time.Duration
}

func ParseArgs(programName string, args []string, errOut io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errOut, "Options")
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.Version, "version", false, "Prints CLI version")
	fs.StringVar(&cfg.TomlConfigPath, "toml", "", "Route file (defaults to the built-in route)")
	fs.StringVar(&cfg.MetricsAddress, "metrics", "", "Address of the telemetry server, disabled when empty")
	fs.StringVar(&cfg.Language, "lang", "primary", "Language of the status lines (route tag, primary or secondary)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only log journey events, no per-second status lines")
	fs.StringVar(&cfg.FeedDirectory, "feed-dir", "", "Directory to keep GTFS-Realtime feed files up to date in, disabled when empty")
	fs.DurationVar(&cfg.RestartDelay, "repeat", 0, "Restart the journey this long after it completes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Version {
		fmt.Fprintf(errOut, "%s: version %s (%s)\n", programName, common.Version, common.GitCommit)
		return cfg, flag.ErrHelp
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.RestartDelay < 0 {
		return fmt.Errorf("repeat delay must not be negative, got %s", cfg.RestartDelay)
	}
	return nil
}

func Main(programName string, args []string, out, errOut io.Writer) int {
	cfg, err := ParseArgs(programName, args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(errOut, "Error:", err)
		return -1
	}

	common.SetupLogger(errOut)
	return Run(cfg, out)
}
