package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tarediiran-industries.com/gap-assist/internal/common"
)

func NewValidateCmd(app *AssistCtlApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the route file loads and is consistent",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := common.RuntimeBenchmark("validate-route", app.loadRoute)
			if err != nil {
				return err
			}

			cfg := rt.Journey
			fmt.Fprintf(cmd.OutOrStdout(),
				"route %s: %d stations, %ds total, %ds spacing, %ds stops, %ds approach, cue every %s (%s/%s)\n",
				rt.Name, len(cfg.Stations), cfg.TotalDuration, cfg.StationSpacing(), cfg.StopDuration,
				cfg.ApproachWindow, rt.CueInterval, rt.Primary, rt.Secondary)
			return nil
		},
	}

	return cmd
}
