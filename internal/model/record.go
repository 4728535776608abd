package model

import "time"

// LedgerRecord is one stored ledger row. Nil prices mean the source row had
// no parseable figure; consumers must not read that as zero.
type LedgerRecord struct {
	ID          int64
	Brand       string
	Model       string
	Variant     string
	Year        string
	Date        string
	BoughtPrice *float64
	SoldPrice   *float64
	Source      string
	ImportedAt  time.Time
}
