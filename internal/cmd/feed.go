package cmd

import (
	"fmt"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/spf13/cobra"

	"tarediiran-industries.com/gap-assist/internal/feed"
	"tarediiran-industries.com/gap-assist/internal/journey"
)

func NewFeedCmd(app *AssistCtlApp) *cobra.Command {
	var at int
	var kind string
	var format string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the GTFS-Realtime feed the display server would serve at a given second",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.loadRoute()
			if err != nil {
				return err
			}
			if at < 0 {
				return fmt.Errorf("--at must not be negative, got %d", at)
			}

			builder := feed.NewBuilder(rt)
			state := journey.StateAt(rt.Journey, at)

			var message *gtfs.FeedMessage
			switch kind {
			case "vehicle-positions":
				message = builder.VehiclePositions(state, time.Now())
			case "alerts":
				message = builder.Alerts(state, time.Now())
			default:
				return fmt.Errorf("unknown feed %q, want vehicle-positions or alerts", kind)
			}

			body, err := feed.Marshal(message, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(body)
			if err == nil && format == feed.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Elapsed seconds into the journey")
	cmd.Flags().StringVar(&kind, "kind", "vehicle-positions", "Feed to print: vehicle-positions or alerts")
	cmd.Flags().StringVar(&format, "format", feed.FormatJSON, "Output format: json or pb")

	return cmd
}
