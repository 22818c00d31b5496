package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tarediiran-industries.com/gap-assist/internal/assist"
	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/journey"
	"tarediiran-industries.com/gap-assist/internal/loop"
	"tarediiran-industries.com/gap-assist/internal/route"
)

func NewTimelineCmd(app *AssistCtlApp) *cobra.Command {
	var ticks bool
	var lang string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Dry-run a whole journey on a virtual clock and print its events",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.loadRoute()
			if err != nil {
				return err
			}
			language, err := parseLanguage(rt, lang)
			if err != nil {
				return err
			}

			benchmarker := common.NewBenchmarker("timeline")
			defer benchmarker.Close()

			count, err := RunTimeline(rt, cmd.OutOrStdout(), language, ticks)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d events over %ds of journey\n", count, rt.Journey.TotalDuration+1)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ticks, "ticks", false, "Also print every tick")
	cmd.Flags().StringVar(&lang, "lang", "primary", "Station name language (route tag, primary or secondary)")

	return cmd
}

// RunTimeline simulates one complete journey on a manual scheduler and writes one
// line per event. It returns the number of events written.
func RunTimeline(rt route.Route, out io.Writer, lang display.Language, ticks bool) (int, error) {
	scheduler := loop.NewManual()
	sim, err := assist.New(rt, scheduler, assist.Options{})
	if err != nil {
		return 0, err
	}

	count := 0
	sim.Subscribe(journey.ListenerFunc(func(event journey.Event) {
		if event.Type == journey.EventTick && !ticks {
			return
		}
		count++
		fmt.Fprintln(out, FormatEvent(rt, event, lang))
	}))

	sim.Start()
	scheduler.Advance(time.Duration(rt.Journey.TotalDuration+1) * journey.TickInterval)

	return count, nil
}

func FormatEvent(rt route.Route, event journey.Event, lang display.Language) string {
	state := event.State
	line := fmt.Sprintf("%4ds %3d%%  %-16s", state.ElapsedSeconds, state.ProgressPercent, event.Type)

	switch event.Type {
	case journey.EventStationEnter, journey.EventStationExit:
		line += " " + rt.StationName(event.StationIndex, lang == display.Secondary)
		if event.Type == journey.EventStationEnter && state.HazardActive {
			line += " (hazard)"
		}
	case journey.EventTick:
		if state.IsNearStation {
			line += " near " + rt.StationName(state.CurrentStationIndex, lang == display.Secondary)
		}
	}

	return line
}
