package journey

type EventType string

const (
	EventJourneyStart    EventType = "journey-start"
	EventTick            EventType = "tick"
	EventStationEnter    EventType = "station-enter"
	EventStationExit     EventType = "station-exit"
	EventJourneyComplete EventType = "journey-complete"
)

// Event is delivered to listeners after the state it carries has been applied.
// StationIndex is the station entered or left, NoStation for the other types.
type Event struct {
	Type         EventType
	StationIndex int
	State        State
}

type Listener interface {
	OnJourneyEvent(Event)
}

type ListenerFunc func(Event)

func (fn ListenerFunc) OnJourneyEvent(event Event) {
	fn(event)
}

// transitions lists the station events implied by moving from prev to next. A change
// of station while staying near only reports the new station.
func transitions(prev, next State) []Event {
	var events []Event
	if prev.IsNearStation && !next.IsNearStation {
		events = append(events, Event{Type: EventStationExit, StationIndex: prev.CurrentStationIndex, State: next})
	}
	if next.IsNearStation && (!prev.IsNearStation || prev.CurrentStationIndex != next.CurrentStationIndex) {
		events = append(events, Event{Type: EventStationEnter, StationIndex: next.CurrentStationIndex, State: next})
	}
	return events
}
