// Package readings turns CSV files and command-line arguments into
// temperature readings.
package readings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/tempstats/internal/config"
)

// ErrColumnNotFound is returned when the value column is missing from the header.
var ErrColumnNotFound = errors.New("value column not found")

// Options holds options for CSV loading.
type Options struct {
	ValueColumn string // Header of the temperature column (default: "temperature")
	Delimiter   rune   // Field delimiter (default: ',')
	HasHeader   bool   // Whether the CSV has a header row (default: true)
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultOptions returns default options for CSV loading.
func DefaultOptions() *Options {
	return &Options{
		ValueColumn: "temperature",
		Delimiter:   ',',
		HasHeader:   true,
	}
}

// OptionsFromConfig builds loading options from the input section of the config.
func OptionsFromConfig(cfg config.InputConfig) *Options {
	return &Options{
		ValueColumn: cfg.ValueColumn,
		Delimiter:   cfg.DelimiterRune(),
		HasHeader:   cfg.HasHeader,
		SkipRows:    cfg.SkipRows,
	}
}

// Load reads temperatures from a CSV file.
func Load(filename string, opts *Options) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file, opts)
}

// LoadFromReader reads temperatures from an io.Reader.
//
// Blank cells and the markers NA, NaN and null are skipped. Any other cell
// that is not a number fails the whole load with its line number.
// Without a header the first column is used.
func LoadFromReader(r io.Reader, opts *Options) ([]float64, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		valueIdx = columnIndex(header, opts.ValueColumn)
		if valueIdx == -1 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.ValueColumn)
		}
	}

	temps := []float64{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}

		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if isMissing(cell) {
			continue
		}
		val, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			line, _ := reader.FieldPos(valueIdx)
			return nil, fmt.Errorf("line %d: invalid temperature %q", line, cell)
		}
		temps = append(temps, val)
	}

	return temps, nil
}

// columnIndex finds name in header. A single-column header is accepted
// whatever its name.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(strings.Trim(h, "\"")) == name {
			return i
		}
	}
	if len(header) == 1 {
		return 0
	}
	return -1
}

func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "NaN", "null":
		return true
	}
	return false
}
