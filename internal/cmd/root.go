package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tarediiran-industries.com/gap-assist/internal/common"
	"tarediiran-industries.com/gap-assist/internal/display"
	"tarediiran-industries.com/gap-assist/internal/route"
)

type AssistCtlApp struct {
	ConfigPath string
}

func Execute() error {
	app := &AssistCtlApp{}
	rootCmd := NewRootCmd(app)
	return rootCmd.Execute()
}

func NewRootCmd(app *AssistCtlApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "assist-ctl",
		Short:         "CLI tool used to inspect gap-assist routes and simulated journeys",
		Version:       fmt.Sprintf("%s (%s)", common.Version, common.GitCommit),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.SetupLogger(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(
		&app.ConfigPath,
		"toml",
		"",
		"Path to route file (defaults to the built-in route)",
	)

	cmd.AddCommand(NewStationsCmd(app))
	cmd.AddCommand(NewStateCmd(app))
	cmd.AddCommand(NewTimelineCmd(app))
	cmd.AddCommand(NewFeedCmd(app))
	cmd.AddCommand(NewValidateCmd(app))

	return cmd
}

func (app *AssistCtlApp) loadRoute() (route.Route, error) {
	return route.Load(app.ConfigPath)
}

func parseLanguage(rt route.Route, value string) (display.Language, error) {
	lang, ok := display.NewLocalizer(rt).Parse(value)
	if !ok {
		return display.Primary, fmt.Errorf("unknown language %q for route %s", value, rt.Name)
	}
	return lang, nil
}
