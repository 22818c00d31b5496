// Package feed publishes the simulated train as GTFS-Realtime vehicle positions and
// hazard alerts.
package feed

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/route"
)

const (
	FormatProtobuf = "pb"
	FormatJSON     = "json"
)

type Builder struct {
	route     route.Route
	tripId    string
	vehicleId string
}

func NewBuilder(rt route.Route) *Builder {
	return &Builder{
		route:     rt,
		tripId:    rt.Name + "-sim",
		vehicleId: rt.Name + "-train",
	}
}

func (builder *Builder) header(now time.Time) *gtfs.FeedHeader {
	return &gtfs.FeedHeader{
		GtfsRealtimeVersion: proto.String("2.0"),
		Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
		Timestamp:           proto.Uint64(uint64(now.Unix())),
	}
}

// StopId is the GTFS stop identifier of a station, its position when it has no id.
func (builder *Builder) StopId(index int) string {
	if id := builder.route.Journey.Stations[index].ID; id != "" {
		return id
	}
	return strconv.Itoa(index)
}

// StopStatus relates the train to a station of its schedule. Inside a near-station
// window the train is incoming before arrival, stopped until departure and in transit
// to the next station after it.
func StopStatus(cfg journey.Config, state journey.State) (int, gtfs.VehiclePosition_VehicleStopStatus) {
	last := len(cfg.Stations) - 1

	if !state.IsNearStation {
		return min(cfg.StationIndexAt(state.ElapsedSeconds)+1, last), gtfs.VehiclePosition_IN_TRANSIT_TO
	}

	index := state.CurrentStationIndex
	window := cfg.Window(index)
	switch {
	case state.ElapsedSeconds < window.Arrival:
		return index, gtfs.VehiclePosition_INCOMING_AT
	case state.ElapsedSeconds <= window.Departure:
		return index, gtfs.VehiclePosition_STOPPED_AT
	}
	return min(index+1, last), gtfs.VehiclePosition_IN_TRANSIT_TO
}

// VehiclePositions describes the train while a journey runs; the feed is empty
// otherwise.
func (builder *Builder) VehiclePositions(state journey.State, now time.Time) *gtfs.FeedMessage {
	message := &gtfs.FeedMessage{Header: builder.header(now)}
	if !state.Running() {
		return message
	}

	index, status := StopStatus(builder.route.Journey, state)
	station := builder.route.Journey.Stations[index]

	message.Entity = append(message.Entity, &gtfs.FeedEntity{
		Id: proto.String(builder.vehicleId),
		Vehicle: &gtfs.VehiclePosition{
			Trip: &gtfs.TripDescriptor{
				TripId: proto.String(builder.tripId),
			},
			Vehicle: &gtfs.VehicleDescriptor{
				Id:    proto.String(builder.vehicleId),
				Label: proto.String(station.Name),
			},
			CurrentStopSequence: proto.Uint32(uint32(index + 1)),
			StopId:              proto.String(builder.StopId(index)),
			CurrentStatus:       status.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	})

	return message
}

// Alerts carries one alert while the hazard warning is active, in both languages.
func (builder *Builder) Alerts(state journey.State, now time.Time) *gtfs.FeedMessage {
	message := &gtfs.FeedMessage{Header: builder.header(now)}
	if !state.HazardActive {
		return message
	}

	index := state.CurrentStationIndex
	station := builder.route.Journey.Stations[index]
	primary := builder.route.PrimaryLabels
	secondary := builder.route.SecondaryLabels

	message.Entity = append(message.Entity, &gtfs.FeedEntity{
		Id: proto.String("hazard-" + builder.StopId(index)),
		Alert: &gtfs.Alert{
			ActivePeriod: []*gtfs.TimeRange{{
				Start: proto.Uint64(uint64(now.Unix())),
			}},
			InformedEntity: []*gtfs.EntitySelector{{
				StopId: proto.String(builder.StopId(index)),
				Trip:   &gtfs.TripDescriptor{TripId: proto.String(builder.tripId)},
			}},
			Cause:  gtfs.Alert_OTHER_CAUSE.Enum(),
			Effect: gtfs.Alert_OTHER_EFFECT.Enum(),
			HeaderText: builder.translated(
				primary.Gap+primary.Beware,
				secondary.Gap+secondary.Beware,
			),
			DescriptionText: builder.translated(
				station.Name+" "+primary.Station,
				station.LocalizedName+" "+secondary.Station,
			),
		},
	})

	return message
}

func (builder *Builder) translated(primary, secondary string) *gtfs.TranslatedString {
	return &gtfs.TranslatedString{
		Translation: []*gtfs.TranslatedString_Translation{
			{Text: proto.String(primary), Language: proto.String(builder.route.Primary.String())},
			{Text: proto.String(secondary), Language: proto.String(builder.route.Secondary.String())},
		},
	}
}

func Marshal(message *gtfs.FeedMessage, format string) ([]byte, error) {
	switch format {
	case FormatProtobuf, "":
		return proto.Marshal(message)
	case FormatJSON:
		return protojson.MarshalOptions{Multiline: true}.Marshal(message)
	}
	return nil, fmt.Errorf("unknown feed format %q", format)
}
