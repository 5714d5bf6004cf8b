package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/cadence/version"
	"github.com/evolens/cadence/internal/bus"
	"github.com/evolens/cadence/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse CONSTRAINT",
	Short: "parse a dependency constraint and show the version interval it accepts",
	Example: `  cadence parse '^1.2.3'
  cadence -e packagist parse '~2.0 || >=3.1 <4.0'`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportOutput, closeFn, err := reportWriter()
		if err != nil {
			return err
		}

		ux := ui.Select(appConfig.CliOptions.Verbosity > 0, appConfig.Quiet, reportOutput)
		return eventLoop(
			parseConstraintWorker(args[0]),
			setupSignals(),
			eventSubscription,
			ux,
			func() { _ = closeFn() },
		)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseConstraintWorker(raw string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		parser, err := version.GetParser(appConfig.EcosystemOpt)
		if err != nil {
			errs <- err
			return
		}

		interval, err := parser.Parse(raw)
		if err != nil {
			errs <- fmt.Errorf("unable to parse constraint %q: %w", raw, err)
			return
		}

		doc := struct {
			Ecosystem   version.Ecosystem   `json:"ecosystem"`
			Constraint  string              `json:"constraint"`
			Interval    string              `json:"interval"`
			Descriptors version.Descriptors `json:"descriptors"`
		}{
			Ecosystem:   appConfig.EcosystemOpt,
			Constraint:  raw,
			Interval:    interval.String(),
			Descriptors: version.Describe(interval),
		}

		rendered, err := json.MarshalIndent(doc, "", " ")
		if err != nil {
			errs <- err
			return
		}

		bus.Publish(partybus.Event{
			Type:  event.NonRootCommandFinished,
			Value: string(rendered),
		})
	}()
	return errs
}
