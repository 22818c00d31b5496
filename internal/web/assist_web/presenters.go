package assist_web

import (
	"fmt"
	"strconv"
	"time"

	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/route"
)

func BuildDisplayPageVM(snapshot display.Snapshot, lang display.Language, localizer *display.Localizer, pollInterval time.Duration) DisplayPageVM {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}

	other := lang.Toggle()
	return DisplayPageVM{
		Title:       localizer.Labels(lang).Station + " · " + snapshot.Route,
		LangTag:     snapshot.Language,
		ToggleLang:  other.String(),
		ToggleLabel: localizer.Tag(other).String(),
		PollMillis:  pollInterval.Milliseconds(),
		Panel:       BuildDisplayPanelVM(snapshot, lang),
	}
}

func BuildDisplayPanelVM(snapshot display.Snapshot, lang display.Language) DisplayPanelVM {
	markers := make([]MarkerVM, 0, len(snapshot.Markers))
	for _, marker := range snapshot.Markers {
		markers = append(markers, MarkerVM{
			Name:            marker.Name,
			PositionPercent: strconv.FormatFloat(marker.PositionPercent, 'f', 1, 64),
			LabelVisible:    marker.LabelVisible,
			Current:         marker.Current,
			HighRisk:        marker.HighRisk,
		})
	}

	return DisplayPanelVM{
		Lang:            lang.String(),
		Phase:           snapshot.Phase,
		Headline:        snapshot.Headline,
		StationName:     snapshot.CurrentStationName,
		GapWarning:      snapshot.GapWarning,
		IsNearStation:   snapshot.IsNearStation,
		HazardActive:    snapshot.HazardActive,
		Visual:          snapshot.ActiveVisual,
		ProgressPercent: snapshot.ProgressPercent,
		Elapsed:         formatElapsed(snapshot.ElapsedSeconds),
		Markers:         markers,
	}
}

func BuildStationVMs(rt route.Route) []StationVM {
	stations := make([]StationVM, 0, len(rt.Journey.Stations))
	for i, station := range rt.Journey.Stations {
		window := rt.Journey.Window(i)
		stations = append(stations, StationVM{
			Index:         i,
			Id:            station.ID,
			Name:          station.Name,
			LocalizedName: station.LocalizedName,
			HazardClass:   string(station.HazardClass),
			Visuals:       station.VisualVariants,
			Arrival:       window.Arrival,
			Departure:     window.Departure,
			NearStart:     window.NearStart,
			NearEnd:       window.NearEnd,
		})
	}
	return stations
}

func formatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
