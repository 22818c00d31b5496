// Package route loads the journey definition: timing parameters, stations and the
// display strings of both languages.
package route

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"tarediiran-industries.com/gap-assist/internal/cue"
	"tarediiran-industries.com/gap-assist/internal/journey"
)

const DefaultName = "amravati-nasik"

//go:embed routes/*.toml
var routesFS embed.FS

type StationFile struct {
	Id            string   `toml:"id"`
	Name          string   `toml:"name"`
	LocalizedName string   `toml:"localized_name"`
	Hazard        string   `toml:"hazard"`
	Visuals       []string `toml:"visuals"`
}

type LabelsFile struct {
	Traveling string `toml:"traveling"`
	Assist    string `toml:"assist"`
	Station   string `toml:"station"`
	Gap       string `toml:"gap"`
	Beware    string `toml:"beware"`
}

type File struct {
	Name          string `toml:"name"`
	DefaultVisual string `toml:"default_visual"`

	// Omitted durations fall back to the journey defaults.
	TotalDuration  *int `toml:"total_duration"`
	StopDuration   *int `toml:"stop_duration"`
	ApproachWindow *int `toml:"approach_window"`
	CueIntervalMs  *int `toml:"cue_interval_ms"`

	Languages struct {
		Primary   string `toml:"primary"`
		Secondary string `toml:"secondary"`

		// Default is "primary" or "secondary"; the display opens in it.
		Default string `toml:"default"`
	} `toml:"languages"`

	Labels struct {
		Primary   LabelsFile `toml:"primary"`
		Secondary LabelsFile `toml:"secondary"`
	} `toml:"labels"`

	Stations []StationFile `toml:"stations"`
}

// Labels are the fixed display strings of one language.
type Labels struct {
	Traveling string
	Assist    string
	Station   string
	Gap       string
	Beware    string
}

// Route is a validated journey definition.
type Route struct {
	Name        string
	Journey     journey.Config
	CueInterval time.Duration

	Primary   language.Tag
	Secondary language.Tag

	// DefaultSecondary opens the display in the secondary language.
	DefaultSecondary bool

	PrimaryLabels   Labels
	SecondaryLabels Labels
}

func Decode(reader io.Reader) (File, error) {
	var file File
	meta, err := toml.NewDecoder(reader).Decode(&file)
	if err != nil {
		return File{}, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return File{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return file, nil
}

func LoadConfigFromToml(path string) (File, error) {
	reader, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer reader.Close()

	return Decode(reader)
}

// Load reads and validates the route file at path, or the built-in route when path
// is empty.
func Load(path string) (Route, error) {
	if path == "" {
		return Default()
	}

	file, err := LoadConfigFromToml(path)
	if err != nil {
		return Route{}, fmt.Errorf("LoadConfigFromToml: %w", err)
	}

	route, err := file.Route()
	if err != nil {
		return Route{}, fmt.Errorf("route %s: %w", path, err)
	}
	return route, nil
}

func Default() (Route, error) {
	reader, err := routesFS.Open("routes/" + DefaultName + ".toml")
	if err != nil {
		return Route{}, err
	}
	defer reader.Close()

	file, err := Decode(reader)
	if err != nil {
		return Route{}, fmt.Errorf("built-in route: %w", err)
	}
	return file.Route()
}

// Route converts the file into a validated Route, applying defaults for omitted
// durations.
func (file File) Route() (Route, error) {
	var errs []error

	cfg := journey.Config{
		DefaultVisual:  file.DefaultVisual,
		TotalDuration:  orDefault(file.TotalDuration, journey.DefaultTotalDuration),
		StopDuration:   orDefault(file.StopDuration, journey.DefaultStopDuration),
		ApproachWindow: orDefault(file.ApproachWindow, journey.DefaultApproachWindow),
	}

	for i, stationFile := range file.Stations {
		station, err := stationFile.station()
		if err != nil {
			errs = append(errs, fmt.Errorf("station %d: %w", i, err))
			continue
		}
		cfg.Stations = append(cfg.Stations, station)
	}

	if len(errs) == 0 {
		if err := cfg.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	primary, primaryErr := parseTag("primary", file.Languages.Primary, language.English)
	secondary, secondaryErr := parseTag("secondary", file.Languages.Secondary, language.Hindi)
	errs = append(errs, primaryErr, secondaryErr)
	if primaryErr == nil && secondaryErr == nil && primary == secondary {
		errs = append(errs, fmt.Errorf("primary and secondary languages are both %s", primary))
	}

	var defaultSecondary bool
	switch file.Languages.Default {
	case "", "primary":
	case "secondary":
		defaultSecondary = true
	default:
		errs = append(errs, fmt.Errorf("default language must be primary or secondary, got %q", file.Languages.Default))
	}

	primaryLabels, err := file.Labels.Primary.labels("primary")
	if err != nil {
		errs = append(errs, err)
	}
	secondaryLabels, err := file.Labels.Secondary.labels("secondary")
	if err != nil {
		errs = append(errs, err)
	}

	cueIntervalMs := orDefault(file.CueIntervalMs, int(cue.DefaultInterval/time.Millisecond))
	if cueIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("cue interval must be positive, got %dms", cueIntervalMs))
	}

	if err := errors.Join(errs...); err != nil {
		return Route{}, err
	}

	name := file.Name
	if name == "" {
		name = DefaultName
	}

	return Route{
		Name:             name,
		Journey:          cfg,
		CueInterval:      time.Duration(cueIntervalMs) * time.Millisecond,
		Primary:          primary,
		Secondary:        secondary,
		DefaultSecondary: defaultSecondary,
		PrimaryLabels:    primaryLabels,
		SecondaryLabels:  secondaryLabels,
	}, nil
}

func (stationFile StationFile) station() (journey.Station, error) {
	hazard, err := journey.ParseHazardClass(stationFile.Hazard)
	if err != nil {
		return journey.Station{}, err
	}
	if len(stationFile.Visuals) != 2 {
		return journey.Station{}, fmt.Errorf("%q needs exactly two visuals, got %d", stationFile.Name, len(stationFile.Visuals))
	}

	localized := stationFile.LocalizedName
	if localized == "" {
		localized = stationFile.Name
	}

	return journey.Station{
		ID:             stationFile.Id,
		Name:           stationFile.Name,
		LocalizedName:  localized,
		HazardClass:    hazard,
		VisualVariants: [2]string{stationFile.Visuals[0], stationFile.Visuals[1]},
	}, nil
}

func (labelsFile LabelsFile) labels(which string) (Labels, error) {
	if labelsFile.Traveling == "" || labelsFile.Station == "" {
		return Labels{}, fmt.Errorf("%s labels need at least traveling and station", which)
	}
	return Labels(labelsFile), nil
}

func parseTag(which, value string, fallback language.Tag) (language.Tag, error) {
	if value == "" {
		return fallback, nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, fmt.Errorf("%s language %q: %w", which, value, err)
	}
	return tag, nil
}

func orDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// StationName returns the name of the station at index in the primary or the
// secondary language.
func (route Route) StationName(index int, secondary bool) string {
	station := route.Journey.Stations[index]
	if secondary {
		return station.LocalizedName
	}
	return station.Name
}
