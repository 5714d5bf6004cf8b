package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/evolens/cadence/cadence/result"
)

// Presenter writes one CSV row per resolved dependency edge.
type Presenter struct {
	result result.Result
}

func NewPresenter(res result.Result) *Presenter {
	return &Presenter{
		result: res,
	}
}

func (pres *Presenter) Present(output io.Writer) error {
	writer := csv.NewWriter(output)
	defer writer.Flush()

	header := []string{"source", "version", "rank", "target", "constraint", "interval", "selected", "c_empty", "c_dev", "c_major", "c_minor", "c_patch"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range pres.result.Edges {
		selected := ""
		if e.SelectedRank != 0 {
			selected = strconv.Itoa(e.SelectedRank)
		}
		row := []string{
			e.Source,
			e.SourceVersion,
			strconv.Itoa(e.SourceRank),
			e.Target,
			e.Constraint,
			e.Interval,
			selected,
			strconv.FormatBool(e.Descriptors.Empty),
			strconv.FormatBool(e.Descriptors.Dev),
			strconv.FormatBool(e.Descriptors.Major),
			strconv.FormatBool(e.Descriptors.Minor),
			strconv.FormatBool(e.Descriptors.Patch),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}
