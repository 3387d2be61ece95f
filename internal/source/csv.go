package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rshade/gridview/internal/record"
)

func decodeCSV(r io.Reader, opts Options) ([]record.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []record.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []record.Record
	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("line %d: %w", line, readErr)
		}

		fields := make(map[string]any, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			fields[name] = csvValue(row[i], opts.CSVNumbers)
		}
		records = append(records, record.New(fields, header, opts.KeyField))
	}
	if records == nil {
		records = []record.Record{}
	}
	return records, nil
}

// csvValue keeps cells as text unless numbers is set and the cell is a plain decimal.
// Empty cells are absent values.
func csvValue(cell string, numbers bool) any {
	if cell == "" {
		return nil
	}
	if numbers && plainDecimal(cell) {
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return f
		}
	}
	return cell
}

// plainDecimal rejects the forms ParseFloat accepts beyond decimal notation:
// hex, underscores, Inf and NaN.
func plainDecimal(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return (unicode.IsLetter(r) && r != 'e' && r != 'E') || r == '_'
	}) < 0
}
