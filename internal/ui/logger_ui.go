package ui

import (
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/internal/log"
)

type loggerUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
}

// NewLoggerUI writes all events to the common application logger and writes the final report to the given writer.
func NewLoggerUI(reportWriter io.Writer) UI {
	return &loggerUI{
		reportOutput: reportWriter,
	}
}

func (l *loggerUI) Setup(unsubscribe func() error) error {
	l.unsubscribe = unsubscribe
	return nil
}

func (l loggerUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.AppUpdateAvailable:
		if err := handleAppUpdateAvailable(e); err != nil {
			log.Warnf("unable to show app update event: %+v", err)
		}
		return nil
	case event.AnalysisFinished:
		if err := handleAnalysisFinished(e, l.reportOutput); err != nil {
			log.Warnf("unable to show analysis finished event: %+v", err)
		}
	case event.NonRootCommandFinished:
		if err := handleNonRootCommandFinished(e, l.reportOutput); err != nil {
			log.Warnf("unable to show command finished event: %+v", err)
		}
	// ignore all events except for the final events
	default:
		return nil
	}

	// this is the last expected event, stop listening to events
	return l.unsubscribe()
}

func (l loggerUI) Teardown(_ bool) error {
	return nil
}
