package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence"
	"github.com/evolens/cadence/cadence/dataset"
	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/cadence/presenter"
	cadenceVersion "github.com/evolens/cadence/cadence/version"
	"github.com/evolens/cadence/internal"
	"github.com/evolens/cadence/internal/bus"
	"github.com/evolens/cadence/internal/log"
	"github.com/evolens/cadence/internal/stringutil"
	"github.com/evolens/cadence/internal/ui"
	"github.com/evolens/cadence/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [flags] RELEASES DEPENDENCIES", internal.ApplicationName),
	Short: "Analyze release cadence and dependency constraints of a package registry snapshot",
	Long: stringutil.Tprintf(`Classifies every release of the depended-upon packages in a registry snapshot
(initial/major/minor/patch, plus backport detection), parses all dependency
constraints into version intervals, and resolves each constraint to the
release it would install today.

Inputs are CSV files (optionally gzip-compressed):
    RELEASES       columns: package, version, date
    DEPENDENCIES   columns: source, version, target, constraint [, kind]

Examples:
    {{.appName}} releases.csv.gz dependencies.csv.gz
    {{.appName}} -e cargo -o json releases.csv deps.csv
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDefaultCmd(cmd, args)
	},
}

func init() {
	setGlobalCliOptions()

	// analysis options
	rootCmd.Flags().StringP(
		"ecosystem", "e", "npm",
		fmt.Sprintf("package registry the snapshot was taken from, options=%v", cadenceVersion.Ecosystems))

	rootCmd.Flags().Int(
		"workers", 0,
		"number of concurrent workers (0 = one per CPU)")

	rootCmd.Flags().Int(
		"min-dependents", 5,
		"only analyze packages with at least this many dependents")

	rootCmd.Flags().String(
		"active-since", "2019-01-01",
		"drop packages with no release on or after this date (empty disables)")

	// output & formatting options
	rootCmd.Flags().StringP(
		"output", "o", "table",
		fmt.Sprintf("report output formatter, options=%v", presenter.Options))

	rootCmd.Flags().String(
		"file", "",
		"file to write the report output to (default is STDOUT)")

	// export options
	rootCmd.Flags().String(
		"export-releases", "",
		"write classified releases to this CSV file (.gz enables compression)")

	rootCmd.Flags().String(
		"export-edges", "",
		"write resolved dependency edges to this CSV file (.gz enables compression)")
}

func setGlobalCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v\n", flag, err)
		os.Exit(1)
	}
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	for flag, path := range map[string]string{
		"ecosystem":       "ecosystem",
		"workers":         "analysis.workers",
		"min-dependents":  "analysis.min-dependents",
		"active-since":    "analysis.active-since",
		"output":          "output",
		"file":            "file",
		"export-releases": "export.releases",
		"export-edges":    "export.edges",
	} {
		if err := viper.BindPFlag(path, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

func runDefaultCmd(_ *cobra.Command, args []string) error {
	if appConfig.CheckForAppUpdate {
		go checkForAppUpdate()
	}

	reportOutput, closeFn, err := reportWriter()
	if err != nil {
		return err
	}

	ux := ui.Select(appConfig.CliOptions.Verbosity > 0, appConfig.Quiet, reportOutput)
	return eventLoop(
		startAnalysisWorker(args[0], args[1]),
		setupSignals(),
		eventSubscription,
		ux,
		func() {
			if err := closeFn(); err != nil {
				log.Errorf("unable to close report destination: %+v", err)
			}
		},
	)
}

func reportWriter() (io.Writer, func() error, error) {
	nop := func() error { return nil }
	path := appConfig.File

	if path == "" {
		return os.Stdout, nop, nil
	}

	reportFile, err := os.Create(path)
	if err != nil {
		return nil, nop, fmt.Errorf("unable to create report file: %w", err)
	}

	log.Infof("report destination: %s", path)
	return reportFile, reportFile.Close, nil
}

func startAnalysisWorker(releasesPath, depsPath string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		presenterOption := presenter.ParseOption(appConfig.Output)
		if presenterOption == presenter.UnknownPresenter {
			errs <- fmt.Errorf("bad --output value '%s'", appConfig.Output)
			return
		}

		fs := afero.NewOsFs()
		releases, err := dataset.ReadReleases(fs, releasesPath)
		if err != nil {
			errs <- err
			return
		}
		deps, err := dataset.ReadDependencies(fs, depsPath)
		if err != nil {
			errs <- err
			return
		}

		res, err := cadence.Analyze(cadence.AnalyzerConfig{
			Ecosystem:     appConfig.EcosystemOpt,
			Workers:       appConfig.Analysis.Workers,
			MinDependents: appConfig.Analysis.MinDependents,
			ActiveSince:   appConfig.Analysis.ActiveSinceOpt,
		}, releases, deps)
		if err != nil {
			errs <- err
			return
		}

		if appConfig.Export.Releases != "" {
			if err := res.SaveClassified(fs, appConfig.Export.Releases); err != nil {
				errs <- err
				return
			}
		}
		if appConfig.Export.Edges != "" {
			if err := res.SaveEdges(fs, appConfig.Export.Edges); err != nil {
				errs <- err
				return
			}
		}

		bus.Publish(partybus.Event{
			Type:  event.AnalysisFinished,
			Value: presenter.GetPresenter(presenterOption, *res),
		})
	}()
	return errs
}

func checkForAppUpdate() {
	isAvailable, newVersion, err := version.IsUpdateAvailable()
	if err != nil {
		log.Errorf("unable to check for application update: %+v", err)
		return
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s", internal.ApplicationName, newVersion)

		bus.Publish(partybus.Event{
			Type:  event.AppUpdateAvailable,
			Value: newVersion,
		})
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
