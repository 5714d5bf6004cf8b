/*
Package presenter renders an analysis result to the user in one of several
report formats.
*/
package presenter

import (
	"io"

	"github.com/evolens/cadence/cadence/presenter/csv"
	"github.com/evolens/cadence/cadence/presenter/json"
	"github.com/evolens/cadence/cadence/presenter/table"
	"github.com/evolens/cadence/cadence/result"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option.
func GetPresenter(option Option, res result.Result) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(res)
	case TablePresenter:
		return table.NewPresenter(res)
	case CSVPresenter:
		return csv.NewPresenter(res)
	default:
		return nil
	}
}
