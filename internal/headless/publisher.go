package headless

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"

	"tarediiran-industries.com/gap-assist/internal/feed"
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/route"
)

const (
	VehiclePositionsFile = "vehicle-positions.pb"
	AlertsFile           = "alerts.pb"
)

// FeedPublisher rewrites the GTFS-Realtime files in a directory after every journey
// event, so feed consumers can poll them like a static endpoint.
type FeedPublisher struct {
	dir     string
	builder *feed.Builder
	now     func() time.Time

	published int
}

func NewFeedPublisher(dir string, rt route.Route) (*FeedPublisher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("feed directory: %w", err)
	}

	return &FeedPublisher{
		dir:     dir,
		builder: feed.NewBuilder(rt),
		now:     time.Now,
	}, nil
}

func (publisher *FeedPublisher) OnJourneyEvent(event journey.Event) {
	if err := publisher.Publish(event.State); err != nil {
		log.Warn().Err(err).Str("dir", publisher.dir).Msg("Failed to publish feed")
	}
}

func (publisher *FeedPublisher) Publish(state journey.State) error {
	now := publisher.now()

	if err := publisher.write(VehiclePositionsFile, publisher.builder.VehiclePositions(state, now)); err != nil {
		return err
	}
	if err := publisher.write(AlertsFile, publisher.builder.Alerts(state, now)); err != nil {
		return err
	}

	publisher.published++
	return nil
}

func (publisher *FeedPublisher) Published() int {
	return publisher.published
}

// write replaces the file through a rename so readers never see a partial message.
func (publisher *FeedPublisher) write(name string, message *gtfs.FeedMessage) error {
	body, err := feed.Marshal(message, feed.FormatProtobuf)
	if err != nil {
		return err
	}

	target := filepath.Join(publisher.dir, name)
	temp, err := os.CreateTemp(publisher.dir, name+".*")
	if err != nil {
		return err
	}

	if _, err := temp.Write(body); err != nil {
		temp.Close()
		os.Remove(temp.Name())
		return err
	}
	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return err
	}

	return os.Rename(temp.Name(), target)
}
