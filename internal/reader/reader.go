// Package reader loads semicolon-delimited applicant export files into
// header-keyed records, tolerating the encodings the exporting systems emit.
package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one CSV row keyed by header field name.
type Record map[string]string

// Get returns the raw value for a field, or "" when the field is absent.
func (r Record) Get(field string) string {
	return r[field]
}

// Trimmed returns the whitespace-trimmed value for a field.
func (r Record) Trimmed(field string) string {
	return strings.TrimSpace(r[field])
}

// Table is the parsed content of one input file.
type Table struct {
	Path     string
	Header   []string
	Records  []Record
	Encoding string // decode strategy that succeeded
}

// HasColumn reports whether the header defines the given field.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// ReadFile decodes and parses one export file. The delimiter is ';', fields
// are quoted with '"' and quoted fields may span multiple physical lines.
// The first row is the header; rows shorter than the header leave the
// missing fields empty.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, encoding, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return &Table{Path: path, Encoding: encoding}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse header of %s: %w", path, err)
	}

	table := &Table{
		Path:     path,
		Header:   header,
		Encoding: encoding,
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}
