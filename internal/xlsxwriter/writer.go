// Package xlsxwriter renders one spreadsheet per applicant group.
package xlsxwriter

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"github.com/skolat/bewerberlisten/internal/answers"
	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/grouper"
	"github.com/skolat/bewerberlisten/internal/reader"
)

const sheetName = "Bewerber"

// minColumnWidth is the floor for column sizing; padding is added on top.
const (
	minColumnWidth = 8
	columnPadding  = 2
)

// Writer renders groups to styled XLSX files.
type Writer struct {
	fields  *config.FieldsConfig
	grading *config.GradingConfig
}

// New creates a Writer bound to the configured field vocabulary.
func New(fields *config.FieldsConfig, grading *config.GradingConfig) *Writer {
	return &Writer{fields: fields, grading: grading}
}

// Write renders one group to path and returns the number of distinct answer
// columns it produced. The header row carries the base field labels followed
// by the group's answer columns in first-seen order; one data row follows per
// record in the group's sorted order.
func (w *Writer) Write(group *grouper.Group, path string) (int, error) {
	baseFields := w.fields.EffectiveBaseFields(group.Variant)

	schema := answers.NewSchema()
	for _, rec := range group.Records {
		schema.AddEntries(answers.Parse(rec.Get(w.fields.AnswersColumn), w.grading))
	}
	answerCols := schema.Columns()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return 0, fmt.Errorf("failed to rename sheet: %w", err)
	}

	labels := make([]string, 0, len(baseFields)+len(answerCols))
	for _, bf := range baseFields {
		labels = append(labels, bf.Label)
	}
	labels = append(labels, answerCols...)

	if err := w.writeHeader(f, labels); err != nil {
		return 0, err
	}

	for i, rec := range group.Records {
		if err := w.writeRow(f, i+2, rec, baseFields, answerCols); err != nil {
			return 0, err
		}
	}

	lastCell, err := excelize.CoordinatesToCellName(len(labels), len(group.Records)+1)
	if err != nil {
		return 0, fmt.Errorf("failed to compute data range: %w", err)
	}
	if err := f.AutoFilter(sheetName, "A1:"+lastCell, nil); err != nil {
		return 0, fmt.Errorf("failed to set auto filter: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", path, err)
	}

	return len(answerCols), nil
}

// writeHeader emits the styled header row and sizes every column to fit the
// longer of its label and the minimum width.
func (w *Writer) writeHeader(f *excelize.File, labels []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, label := range labels {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := runewidth.StringWidth(label)
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if err := f.SetColWidth(sheetName, colName, colName, float64(width+columnPadding)); err != nil {
			return err
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(labels), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A1", lastHeader, style)
}

// writeRow emits one record: base field values (with the special-needs
// transform applied), then the record's answer values under the group schema.
func (w *Writer) writeRow(f *excelize.File, row int, rec reader.Record, baseFields []config.BaseField, answerCols []string) error {
	for i, bf := range baseFields {
		value := rec.Get(bf.Column)
		if bf.Column == w.fields.Person.SpecialNeeds {
			value = specialNeedsMark(value)
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}

	values := make(map[string]string)
	for _, e := range answers.Parse(rec.Get(w.fields.AnswersColumn), w.grading) {
		values[e.Column] = e.Value
	}

	for i, col := range answerCols {
		cell, err := excelize.CoordinatesToCellName(len(baseFields)+i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, coerce(values[col])); err != nil {
			return err
		}
	}

	return nil
}

// specialNeedsMark maps the export's "J" flag to the display marker "X";
// every other value renders empty.
func specialNeedsMark(value string) string {
	if value == "J" {
		return "X"
	}
	return ""
}

// coerce converts an answer value for cell storage: integer if it parses as
// one, else float, else the text unchanged. First successful conversion wins.
func coerce(value string) interface{} {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(value, 64); err == nil {
		return x
	}
	return value
}
