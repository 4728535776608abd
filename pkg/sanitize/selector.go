package sanitize

import "sort"

// DefaultMaxRecords bounds how many records survive selection. A ledger can
// run to thousands of rows; everything past the most relevant few dozen only
// bloats the report and overweights irrelevant history.
const DefaultMaxRecords = 50

type scoredRecord struct {
	record HistoricalRecord
	score  int
}

// SelectRelevant keeps the up-to-maxRecords most relevant records, ordered
// by descending score with ties keeping their original ledger order.
// Records scoring zero are dropped entirely. maxRecords <= 0 falls back to
// DefaultMaxRecords.
func SelectRelevant(records []HistoricalRecord, target TargetVehicle, maxRecords int) []HistoricalRecord {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}

	var scored []scoredRecord
	for _, rec := range records {
		if s := Score(rec, target); s > 0 {
			scored = append(scored, scoredRecord{record: rec, score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxRecords {
		scored = scored[:maxRecords]
	}

	selected := make([]HistoricalRecord, len(scored))
	for i, s := range scored {
		selected[i] = s.record
	}
	return selected
}
