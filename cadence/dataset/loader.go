/*
Package dataset materializes a registry snapshot for one ecosystem: raw
release and dependency-edge CSV files in, rank-carrying release histories
and filtered dependency edges out.
*/
package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/evolens/cadence/internal/log"
)

// ReleaseRecord is one raw row of the releases input: a package, the
// version string exactly as published, and the publication timestamp.
type ReleaseRecord struct {
	Package string
	Version string
	Date    time.Time
}

// DependencyRecord is one raw row of the dependencies input: the source
// package at a specific release declares a constraint on the target
// package. Kind distinguishes runtime dependencies from dev/test ones and
// may be empty when the snapshot does not carry it.
type DependencyRecord struct {
	Source     string
	Version    string
	Target     string
	Constraint string
	Kind       string
}

// the timestamp layouts observed across registry snapshot exports
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadReleases loads a releases CSV (gzip-compressed when the path ends in
// .gz) with at least the header columns package, version, date.
func ReadReleases(fs afero.Fs, path string) ([]ReleaseRecord, error) {
	var records []ReleaseRecord
	err := readCSV(fs, path, []string{"package", "version", "date"}, func(row map[string]string) error {
		date, err := parseDate(row["date"])
		if err != nil {
			return err
		}
		records = append(records, ReleaseRecord{
			Package: row["package"],
			Version: row["version"],
			Date:    date,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read releases from %s: %w", path, err)
	}
	log.Debugf("loaded %d release records from %s", len(records), path)
	return records, nil
}

// ReadDependencies loads a dependencies CSV with at least the header
// columns source, version, target, constraint (kind is optional).
func ReadDependencies(fs afero.Fs, path string) ([]DependencyRecord, error) {
	var records []DependencyRecord
	err := readCSV(fs, path, []string{"source", "version", "target", "constraint"}, func(row map[string]string) error {
		records = append(records, DependencyRecord{
			Source:     row["source"],
			Version:    row["version"],
			Target:     row["target"],
			Constraint: row["constraint"],
			Kind:       row["kind"],
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read dependencies from %s: %w", path, err)
	}
	log.Debugf("loaded %d dependency records from %s", len(records), path)
	return records, nil
}

func readCSV(fs afero.Fs, path string, required []string, consume func(row map[string]string) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("unable to open gzip stream: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("unable to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, name := range required {
		if _, exists := columns[name]; !exists {
			return fmt.Errorf("missing required column %q", name)
		}
	}

	line := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("unable to read CSV row %d: %w", line, err)
		}
		line++

		row := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(fields) {
				row[name] = fields[idx]
			}
		}
		if err := consume(row); err != nil {
			return fmt.Errorf("unable to use CSV row %d: %w", line, err)
		}
	}

	return nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %q", value)
}
