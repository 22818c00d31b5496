package journey

import "fmt"

type HazardClass string

const (
	HazardNormal   HazardClass = "normal"
	HazardHighRisk HazardClass = "high-risk"
)

func ParseHazardClass(value string) (HazardClass, error) {
	switch HazardClass(value) {
	case HazardNormal, HazardHighRisk:
		return HazardClass(value), nil
	case "":
		return HazardNormal, nil
	}
	return "", fmt.Errorf("unknown hazard class %q", value)
}

// Station is one stop of the journey, in travel order.
type Station struct {
	ID            string
	Name          string
	LocalizedName string
	HazardClass   HazardClass

	// VisualVariants are alternated by the proximity cue while the train is near.
	VisualVariants [2]string
}

func (station Station) IsHighRisk() bool {
	return station.HazardClass == HazardHighRisk
}
