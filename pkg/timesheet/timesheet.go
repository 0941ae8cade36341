// Package timesheet reads the per-company CSV time logs that feed a billing
// run. A time log is a semicolon-separated file with a Date;Minutes;Description
// header; each row is one logged work item.
package timesheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Record is one row of a time log.
type Record struct {
	Date        time.Time
	Minutes     int
	Description string
}

// ReadFile reads all records from a CSV time log. Content is not validated
// beyond what parsing requires; a row that does not parse fails the file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open time log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read time log %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("time log %s: %w", path, err)
	}

	var records []Record
	for i, row := range rows[1:] {
		record, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("time log %s row %d: %w", path, i+2, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// TotalMinutes sums the logged minutes of all records.
func TotalMinutes(records []Record) int {
	total := 0
	for _, record := range records {
		total += record.Minutes
	}
	return total
}

// FindCompanies lists the companies that have a time log in the given period
// directory: one company per *.csv file, named after the file stem.
func FindCompanies(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var companies []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".csv" {
			continue
		}
		companies = append(companies, strings.TrimSuffix(name, ".csv"))
	}

	return companies, nil
}

type columns struct {
	date        int
	minutes     int
	description int
}

func headerIndex(header []string) (columns, error) {
	cols := columns{date: -1, minutes: -1, description: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			cols.date = i
		case "minutes":
			cols.minutes = i
		case "description":
			cols.description = i
		}
	}

	if cols.date < 0 || cols.minutes < 0 || cols.description < 0 {
		return cols, fmt.Errorf("missing required header columns, got %v", header)
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (Record, error) {
	if len(row) <= cols.date || len(row) <= cols.minutes || len(row) <= cols.description {
		return Record{}, fmt.Errorf("short row: %v", row)
	}

	date, err := time.Parse("02.01.2006", strings.TrimSpace(row[cols.date]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q: %w", row[cols.date], err)
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(row[cols.minutes]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid minutes %q: %w", row[cols.minutes], err)
	}

	return Record{
		Date:        date,
		Minutes:     minutes,
		Description: row[cols.description],
	}, nil
}
