package sanitize

import (
	"math"
	"strconv"
	"strings"
)

type field int

const (
	fieldBrand field = iota
	fieldModel
	fieldVariant
	fieldYear
	fieldDate
	fieldBought
	fieldSold
)

// headerTokens maps a lowercase substring in a header cell to the field it
// carries. A cell can match more than one token ("Model Year" fills both).
var headerTokens = []struct {
	token string
	field field
}{
	{"brand", fieldBrand},
	{"model", fieldModel},
	{"variant", fieldVariant},
	{"year", fieldYear},
	{"date", fieldDate},
	{"bought", fieldBought},
	{"purchase", fieldBought},
	{"sold", fieldSold},
	{"sale", fieldSold},
}

// ParseLedger turns raw comma-delimited text into records, in input row
// order. The first non-empty line is the header; cells are mapped to fields
// by case-insensitive substring matching, unmatched columns are ignored.
// Fewer than two non-empty lines yields an empty slice, never an error.
//
// Known limitation: fields are split on bare commas with no quoting support,
// so a comma inside a field value misaligns every column after it.
func ParseLedger(text string) []HistoricalRecord {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return nil
	}

	columns := mapHeader(lines[0])

	records := make([]HistoricalRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		records = append(records, parseRow(line, columns))
	}
	return records
}

// mapHeader returns, per column index, the fields that column feeds.
func mapHeader(header string) [][]field {
	cells := strings.Split(header, ",")
	columns := make([][]field, len(cells))
	for i, cell := range cells {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, ht := range headerTokens {
			if strings.Contains(cell, ht.token) {
				columns[i] = append(columns[i], ht.field)
			}
		}
	}
	return columns
}

func parseRow(line string, columns [][]field) HistoricalRecord {
	rec := NewRecord()
	cells := strings.Split(line, ",")
	for i, cell := range cells {
		if i >= len(columns) {
			break
		}
		cell = strings.TrimSpace(cell)
		for _, f := range columns[i] {
			assignField(&rec, f, cell)
		}
	}
	return rec
}

func assignField(rec *HistoricalRecord, f field, value string) {
	switch f {
	case fieldBrand:
		rec.Brand = value
	case fieldModel:
		rec.Model = value
	case fieldVariant:
		rec.Variant = value
	case fieldYear:
		rec.Year = value
	case fieldDate:
		rec.Date = value
	case fieldBought:
		rec.BoughtPrice = parsePrice(value)
	case fieldSold:
		rec.SoldPrice = parsePrice(value)
	}
}

// parsePrice returns NaN for anything that is not a number. Downstream
// stages treat NaN as absent, never as zero.
func parsePrice(value string) float64 {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
