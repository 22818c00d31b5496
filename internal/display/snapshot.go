// Package display turns journey state into what the rider-facing screen shows.
package display

import (
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/route"
)

type Marker struct {
	Name            string  `json:"name"`
	PositionPercent float64 `json:"positionPercent"`
	LabelVisible    bool    `json:"labelVisible"`
	Current         bool    `json:"current"`
	HighRisk        bool    `json:"highRisk"`
}

// Snapshot is the read-only view of one journey state in one language.
type Snapshot struct {
	Route    string `json:"route"`
	Language string `json:"language"`
	Phase    string `json:"phase"`

	ElapsedSeconds     int    `json:"elapsedSeconds"`
	ProgressPercent    int    `json:"progressPercent"`
	CurrentStationName string `json:"currentStationName"`
	IsNearStation      bool   `json:"isNearStation"`
	HazardActive       bool   `json:"hazardActive"`
	ActiveVisual       string `json:"activeVisual"`

	Headline   string   `json:"headline"`
	GapWarning string   `json:"gapWarning,omitempty"`
	Markers    []Marker `json:"stations"`
}

func (localizer *Localizer) Build(state journey.State, lang Language) Snapshot {
	rt := localizer.route
	labels := localizer.Labels(lang)

	snapshot := Snapshot{
		Route:              rt.Name,
		Language:           localizer.Tag(lang).String(),
		Phase:              string(state.Phase),
		ElapsedSeconds:     state.ElapsedSeconds,
		ProgressPercent:    state.ProgressPercent,
		CurrentStationName: labels.Traveling,
		IsNearStation:      state.IsNearStation,
		HazardActive:       state.HazardActive,
		ActiveVisual:       state.ActiveVisual,
		Headline:           labels.Assist,
		Markers:            Markers(rt, state, lang),
	}

	if _, ok := state.Station(rt.Journey); ok {
		name := rt.StationName(state.CurrentStationIndex, lang == Secondary)
		snapshot.CurrentStationName = name
		snapshot.Headline = name + " " + labels.Station
		snapshot.GapWarning = labels.Gap + labels.Beware
	}

	return snapshot
}

// Markers places every station on the timeline. Intermediate labels appear once the
// progress bar has reached them; the first and last are always labelled.
func Markers(rt route.Route, state journey.State, lang Language) []Marker {
	stations := rt.Journey.Stations
	markers := make([]Marker, 0, len(stations))

	for i, station := range stations {
		position := 0.0
		if len(stations) > 1 {
			position = float64(i) / float64(len(stations)-1) * 100
		}

		markers = append(markers, Marker{
			Name:            rt.StationName(i, lang == Secondary),
			PositionPercent: position,
			LabelVisible:    i == 0 || i == len(stations)-1 || float64(state.ProgressPercent) >= position,
			Current:         state.IsNearStation && state.CurrentStationIndex == i,
			HighRisk:        station.IsHighRisk(),
		})
	}

	return markers
}
