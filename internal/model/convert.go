package model

import "github.com/AmanPoddar9/autovaluate-pro/pkg/sanitize"

// ToHistorical maps a stored row onto the pipeline's record type. Nil
// prices stay absent (NaN), never zero.
func (r LedgerRecord) ToHistorical() sanitize.HistoricalRecord {
	rec := sanitize.NewRecord()
	rec.Brand = r.Brand
	rec.Model = r.Model
	rec.Variant = r.Variant
	rec.Year = r.Year
	rec.Date = r.Date
	if r.BoughtPrice != nil {
		rec.BoughtPrice = *r.BoughtPrice
	}
	if r.SoldPrice != nil {
		rec.SoldPrice = *r.SoldPrice
	}
	return rec
}

// ToHistoricalRecords converts a stored ledger slice in row order.
func ToHistoricalRecords(rows []LedgerRecord) []sanitize.HistoricalRecord {
	records := make([]sanitize.HistoricalRecord, len(rows))
	for i, row := range rows {
		records[i] = row.ToHistorical()
	}
	return records
}

// FromHistorical maps a parsed pipeline record onto a storable row.
func FromHistorical(rec sanitize.HistoricalRecord, source string) LedgerRecord {
	row := LedgerRecord{
		Brand:   rec.Brand,
		Model:   rec.Model,
		Variant: rec.Variant,
		Year:    rec.Year,
		Date:    rec.Date,
		Source:  source,
	}
	if rec.HasBoughtPrice() {
		bought := rec.BoughtPrice
		row.BoughtPrice = &bought
	}
	if rec.HasSoldPrice() {
		sold := rec.SoldPrice
		row.SoldPrice = &sold
	}
	return row
}
