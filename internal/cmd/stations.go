package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewStationsCmd(app *AssistCtlApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List the stations of the route with their arrival and approach windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.loadRoute()
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "#\tID\tNAME\tLOCALIZED\tHAZARD\tARRIVAL\tDEPARTURE\tNEAR")
			for i, station := range rt.Journey.Stations {
				window := rt.Journey.Window(i)
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%ds\t%ds\t%ds-%ds\n",
					i, station.ID, station.Name, station.LocalizedName, station.HazardClass,
					window.Arrival, window.Departure, window.NearStart, window.NearEnd)
			}
			return writer.Flush()
		},
	}

	return cmd
}
