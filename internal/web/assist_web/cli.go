package assist_web

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"tarediiran-industries.com/gap-assist/internal/common"
)

type Config struct {
	Version        bool
	ListenAddress  string
	TomlConfigPath string
	MetricsAddress string
	PollInterval   time.Duration
	RestartDelay   time.Duration
	AutoStart      bool
	AllowedOrigins []string
	AssetsDir      string
}

func ParseArgs(programName string, args []string, errOut io.Writer) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errOut, "Options")
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.Version, "version", false, "Prints CLI version")
	fs.StringVar(&cfg.ListenAddress, "listen", ":8080", "Address of the display server")
	fs.StringVar(&cfg.TomlConfigPath, "toml", "", "Route file (defaults to the built-in route)")
	fs.StringVar(&cfg.MetricsAddress, "metrics", "", "Address of the telemetry server, disabled when empty")
	fs.DurationVar(&cfg.PollInterval, "poll", 500*time.Millisecond, "How often the display page refreshes")
	fs.DurationVar(&cfg.RestartDelay, "repeat", 0, "Restart the journey this long after it completes")
	fs.BoolVar(&cfg.AutoStart, "autostart", true, "Start a journey as soon as the server is up")
	fs.StringVar(&cfg.AssetsDir, "assets", "", "Directory with the route's visuals (defaults to the built-in ones)")
	fs.StringVar(&origins, "cors", "", "Comma-separated origins allowed to call the API and feeds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.AllowedOrigins = splitList(origins)

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
	var errs []error

	if cfg.ListenAddress == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if cfg.PollInterval < 100*time.Millisecond {
		errs = append(errs, fmt.Errorf("poll interval must be at least 100ms, got %s", cfg.PollInterval))
	}
	if cfg.RestartDelay < 0 {
		errs = append(errs, fmt.Errorf("repeat delay must not be negative, got %s", cfg.RestartDelay))
	}
	if cfg.AssetsDir != "" {
		if info, err := os.Stat(cfg.AssetsDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("assets directory %q is not a readable directory", cfg.AssetsDir))
		}
	}

	return errors.Join(errs...)
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
	return Run(cfg)
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
