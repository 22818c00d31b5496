package assist_web

import "tarediiran-industries.com/gap-assist/internal/display"

type DisplayPageVM struct {
	Title       string
	LangTag     string
	ToggleLang  string
	ToggleLabel string
	PollMillis  int64
	Panel       DisplayPanelVM
}

type DisplayPanelVM struct {
	Lang            string
	Phase           string
	Headline        string
	StationName     string
	GapWarning      string
	IsNearStation   bool
	HazardActive    bool
	Visual          string
	ProgressPercent int
	Elapsed         string
	Markers         []MarkerVM
}

type MarkerVM struct {
	Name            string
	PositionPercent string
	LabelVisible    bool
	Current         bool
	HighRisk        bool
}

type StationVM struct {
	Index         int       `json:"index"`
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	LocalizedName string    `json:"localizedName"`
	HazardClass   string    `json:"hazardClass"`
	Visuals       [2]string `json:"visuals"`
	Arrival       int       `json:"arrival"`
	Departure     int       `json:"departure"`
	NearStart     int       `json:"nearStart"`
	NearEnd       int       `json:"nearEnd"`
}

type StopResultVM struct {
	Stopped  bool             `json:"stopped"`
	Snapshot display.Snapshot `json:"snapshot"`
}

type HealthVM struct {
	Status    string `json:"status"`
	Route     string `json:"route"`
	Phase     string `json:"phase"`
	CueActive bool   `json:"cueActive"`
	Timestamp string `json:"timestamp"`
}
