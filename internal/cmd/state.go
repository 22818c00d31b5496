package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/journey"
)

func NewStateCmd(app *AssistCtlApp) *cobra.Command {
	var at int
	var lang string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the display snapshot of a journey at a given second",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := app.loadRoute()
			if err != nil {
				return err
			}
			if at < 0 {
				return fmt.Errorf("--at must not be negative, got %d", at)
			}
			language, err := parseLanguage(rt, lang)
			if err != nil {
				return err
			}

			state := journey.StateAt(rt.Journey, at)
			snapshot := display.NewLocalizer(rt).Build(state, language)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(snapshot)
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Elapsed seconds into the journey")
	cmd.Flags().StringVar(&lang, "lang", "primary", "Display language (route tag, primary or secondary)")

	return cmd
}
