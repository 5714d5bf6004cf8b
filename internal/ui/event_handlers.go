package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence/event/parsers"
	"github.com/evolens/cadence/internal"
)

func handleAnalysisFinished(event partybus.Event, reportOutput io.Writer) error {
	pres, err := parsers.ParseAnalysisFinished(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show analysis report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(event partybus.Event, reportOutput io.Writer) error {
	result, err := parsers.ParseNonRootCommandFinished(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	if _, err := io.WriteString(reportOutput, *result+"\n"); err != nil {
		return fmt.Errorf("unable to show command output: %w", err)
	}
	return nil
}

func handleAppUpdateAvailable(event partybus.Event) error {
	newVersion, err := parsers.ParseAppUpdateAvailable(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	message := color.Magenta.Sprintf("New version of %s is available: %s", internal.ApplicationName, newVersion)
	fmt.Fprintln(os.Stderr, message)

	return nil
}
