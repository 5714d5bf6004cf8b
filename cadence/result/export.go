package result

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// SaveClassified writes the classified releases as CSV (gzip-compressed
// when the path ends in .gz), one row per release.
func (r Result) SaveClassified(fs afero.Fs, path string) error {
	return writeCSV(fs, path, func(w *csv.Writer) error {
		header := []string{"package", "version", "major", "minor", "patch", "date", "rank", "rank_date", "kind", "backported", "backported_from"}
		if err := w.Write(header); err != nil {
			return err
		}
		for _, rel := range r.Classified {
			row := []string{
				rel.Package,
				rel.Raw,
				rel.Version.Major.String(),
				rel.Version.Minor.String(),
				rel.Version.Patch.String(),
				rel.Date.UTC().Format("2006-01-02 15:04:05"),
				strconv.Itoa(rel.VersionRank),
				strconv.Itoa(rel.DateRank),
				rel.Kind.String(),
				strconv.FormatBool(rel.Backported),
				formatRank(rel.BackportedFrom),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveEdges writes the resolved dependency edges as CSV, one row per edge.
func (r Result) SaveEdges(fs afero.Fs, path string) error {
	return writeCSV(fs, path, func(w *csv.Writer) error {
		header := []string{"source", "version", "rank", "target", "constraint", "interval", "selected", "c_empty", "c_dev", "c_major", "c_minor", "c_patch"}
		if err := w.Write(header); err != nil {
			return err
		}
		for _, e := range r.Edges {
			row := []string{
				e.Source,
				e.SourceVersion,
				strconv.Itoa(e.SourceRank),
				e.Target,
				e.Constraint,
				e.Interval,
				formatRank(e.SelectedRank),
				strconv.FormatBool(e.Descriptors.Empty),
				strconv.FormatBool(e.Descriptors.Dev),
				strconv.FormatBool(e.Descriptors.Major),
				strconv.FormatBool(e.Descriptors.Minor),
				strconv.FormatBool(e.Descriptors.Patch),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// a rank of 0 means "none" and renders as an empty cell
func formatRank(rank int) string {
	if rank == 0 {
		return ""
	}
	return strconv.Itoa(rank)
}

func writeCSV(fs afero.Fs, path string, write func(w *csv.Writer) error) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()

	var out io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		defer gz.Close()
		out = gz
	}

	w := csv.NewWriter(out)
	if err := write(w); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to flush %s: %w", path, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return fmt.Errorf("unable to finish gzip stream for %s: %w", path, err)
		}
	}
	return nil
}
