package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/evolens/cadence/cadence/release"
	"github.com/evolens/cadence/cadence/result"
)

// Presenter renders the summary aggregates of an analysis run as a
// human-readable table.
type Presenter struct {
	result result.Result
}

// NewPresenter is a *Presenter constructor
func NewPresenter(res result.Result) *Presenter {
	return &Presenter{
		result: res,
	}
}

// Present creates a human-readable summary report
func (pres *Presenter) Present(output io.Writer) error {
	summary := pres.result.Summarize()

	if summary.Releases == 0 {
		_, err := io.WriteString(output, "No releases analyzed\n")
		return err
	}

	if _, err := fmt.Fprintf(output, "Ecosystem: %s\n\n", pres.result.Ecosystem); err != nil {
		return err
	}

	rows := [][]string{
		{"Packages analyzed", count(summary.Packages)},
		{"Releases classified", count(summary.Releases)},
	}
	for _, kind := range release.UpdateKinds {
		label := fmt.Sprintf("  %s updates", strings.Title(kind.String()))
		rows = append(rows, []string{label, count(summary.KindCounts[kind])})
	}
	rows = append(rows,
		[]string{"Backported releases", count(summary.Backports)},
		[]string{"Dependency edges", count(summary.Edges)},
		[]string{"Distinct constraints", count(summary.Constraints)},
		[]string{"  Unsatisfiable", count(summary.Unsatisfiable)},
		[]string{"  Accepting empty set", count(summary.Descriptors.Empty)},
		[]string{"  Pre-1.0 only", count(summary.Descriptors.Dev)},
		[]string{"  Major-crossing", count(summary.Descriptors.Major)},
		[]string{"  Minor-crossing", count(summary.Descriptors.Minor)},
		[]string{"  Patch-crossing", count(summary.Descriptors.Patch)},
	)

	table := tablewriter.NewWriter(output)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()

	return nil
}

func count(n int) string {
	return humanize.Comma(int64(n))
}
