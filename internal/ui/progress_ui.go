package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wagoodman/go-partybus"

	"github.com/evolens/cadence/cadence/event"
	"github.com/evolens/cadence/cadence/event/monitor"
	"github.com/evolens/cadence/cadence/event/parsers"
	"github.com/evolens/cadence/internal/log"
)

const pollInterval = 100 * time.Millisecond

// progressUI periodically redraws a one-line progress summary on stderr
// while the analysis runs, then writes the final report. Requires stderr to
// be a terminal; Select falls back to the logger UI otherwise.
type progressUI struct {
	unsubscribe  func() error
	reportOutput io.Writer
	stop         chan struct{}
	done         chan struct{}
}

func NewProgressUI(reportWriter io.Writer) UI {
	return &progressUI{
		reportOutput: reportWriter,
	}
}

func (p *progressUI) Setup(unsubscribe func() error) error {
	p.unsubscribe = unsubscribe
	return nil
}

func (p *progressUI) Handle(e partybus.Event) error {
	switch e.Type {
	case event.AppUpdateAvailable:
		if err := handleAppUpdateAvailable(e); err != nil {
			log.Warnf("unable to show app update event: %+v", err)
		}
		return nil

	case event.AnalysisStarted:
		mon, err := parsers.ParseAnalysisStarted(e)
		if err != nil {
			log.Warnf("bad %s event: %+v", e.Type, err)
			return nil
		}
		p.startPolling(mon)
		return nil

	case event.AnalysisFinished:
		p.stopPolling()
		if err := handleAnalysisFinished(e, p.reportOutput); err != nil {
			log.Warnf("unable to show analysis finished event: %+v", err)
		}

	case event.NonRootCommandFinished:
		p.stopPolling()
		if err := handleNonRootCommandFinished(e, p.reportOutput); err != nil {
			log.Warnf("unable to show command finished event: %+v", err)
		}

	// ignore all events except for the final events
	default:
		return nil
	}

	// this is the last expected event, stop listening to events
	return p.unsubscribe()
}

func (p *progressUI) Teardown(_ bool) error {
	p.stopPolling()
	return nil
}

func (p *progressUI) startPolling(mon *monitor.Analysis) {
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				// clear the progress line before the report is written
				fmt.Fprintf(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r\033[K  classified %d packages, parsed %d constraints, resolved %d pairs",
					mon.PackagesClassified.Current(),
					mon.ConstraintsParsed.Current(),
					mon.PairsResolved.Current(),
				)
			}
		}
	}()
}

func (p *progressUI) stopPolling() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
}
