package monitor

import "github.com/wagoodman/go-progress"

// Analysis exposes the progress of one batch analysis run: packages whose
// histories have been classified, distinct constraints parsed, and
// (target, constraint) pairs resolved to a selected release.
type Analysis struct {
	PackagesClassified progress.Monitorable
	ConstraintsParsed  progress.Monitorable
	PairsResolved      progress.Monitorable
}
