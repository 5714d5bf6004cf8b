/*
Package event provides event types for all events that the cadence library
published onto the event bus. By convention, for each event defined here,
there should be a corresponding event parser defined in the parsers/ child
package.
*/
package event

import "github.com/wagoodman/go-partybus"

const (
	// AppUpdateAvailable is a partybus event that occurs when an application
	// update is available.
	AppUpdateAvailable partybus.EventType = "cadence-app-update-available"

	// AnalysisStarted is a partybus event that occurs when a batch analysis
	// run begins, carrying progress monitors for its stages.
	AnalysisStarted partybus.EventType = "cadence-analysis-started"

	// AnalysisFinished is a partybus event that occurs when a batch analysis
	// run completes, carrying the report presenter.
	AnalysisFinished partybus.EventType = "cadence-analysis-finished"

	// NonRootCommandFinished is a partybus event that occurs when a
	// non-analysis command is completed, carrying the command output.
	NonRootCommandFinished partybus.EventType = "cadence-non-root-command-finished"
)
