// Package sanitize reduces a raw transaction ledger into a compact,
// privacy-preserving summary that is safe to embed in an LLM prompt.
// Raw absolute prices never leave this package as machine-readable fields;
// only rounded Lakhs figures inside free text and margin percentages do.
//
// The whole pipeline is pure and synchronous: parse, score, select,
// aggregate, compose. Callers that want caching hash the inputs themselves.
package sanitize

import "math"

// HistoricalRecord is one past purchase/sale transaction. Any field may be
// absent: empty string for text fields, NaN for prices. Absent never means
// zero.
type HistoricalRecord struct {
	Brand       string
	Model       string
	Variant     string
	Year        string
	Date        string
	BoughtPrice float64
	SoldPrice   float64
}

// NewRecord returns a record with both prices marked absent.
func NewRecord() HistoricalRecord {
	return HistoricalRecord{
		BoughtPrice: math.NaN(),
		SoldPrice:   math.NaN(),
	}
}

func (r HistoricalRecord) HasBoughtPrice() bool {
	return !math.IsNaN(r.BoughtPrice)
}

func (r HistoricalRecord) HasSoldPrice() bool {
	return !math.IsNaN(r.SoldPrice)
}

// MarginEligible reports whether a per-record margin can be computed.
func (r HistoricalRecord) MarginEligible() bool {
	return r.HasBoughtPrice() && r.HasSoldPrice() && r.BoughtPrice > 0
}

// Margin is (sold-bought)/bought*100. Only meaningful when MarginEligible.
func (r HistoricalRecord) Margin() float64 {
	return (r.SoldPrice - r.BoughtPrice) / r.BoughtPrice * 100
}

// TargetVehicle is the (brand, model) pair being valued.
type TargetVehicle struct {
	Brand string
	Model string
}

// AggregatedGroup is one (brand, model) cluster of selected records.
type AggregatedGroup struct {
	BrandModel string
	Count      int
	AvgMargin  float64
	Years      []string
}

// MarginData is the structured margin summary exposed alongside the prose
// report. The percentage is deliberately precise: margin carries signal
// without revealing absolute prices.
type MarginData struct {
	Percentage  float64
	Description string
}

// ValuationInsight is the pipeline output. MarginData is nil when no usable
// margin could be computed for the target.
type ValuationInsight struct {
	Insights   string
	MarginData *MarginData
}
