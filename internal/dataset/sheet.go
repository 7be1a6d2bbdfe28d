package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"honnef.co/go/funnel"
)

// decodeSheet reads a spreadsheet whose first non-empty row is a header,
// "label" followed by one sub label per value column. Every following row is
// a stage label followed by its values. A single value column yields simple
// data.
func decodeSheet(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidFormat, sheet, err)
	}

	var header []string
	var labels []string
	var values [][]float64
	for rowIdx, row := range rows {
		if isBlank(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		labels = append(labels, strings.TrimSpace(row[0]))
		stage := make([]float64, len(header)-1)
		for col := 1; col < len(row) && col < len(header); col++ {
			v, err := parseCell(row[col])
			if err != nil {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+1)
				return nil, fmt.Errorf("sheet %q cell %s: %w", sheet, cell, err)
			}
			stage[col-1] = v
		}
		values = append(values, stage)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: sheet %q has no value columns", ErrInvalidFormat, sheet)
	}

	if len(header) == 2 {
		simple := make(funnel.Simple, len(values))
		for i, stage := range values {
			simple[i] = stage[0]
		}
		return &Dataset{Data: simple, Labels: labels}, nil
	}
	subLabels := make([]string, len(header)-1)
	for i, h := range header[1:] {
		subLabels[i] = strings.TrimSpace(h)
	}
	return &Dataset{
		Data:      funnel.Layered(values),
		Labels:    labels,
		SubLabels: subLabels,
	}, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseCell parses a numeric cell. Empty cells are zero.
func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", funnel.ErrInvalidValue, s)
	}
	return v, nil
}
