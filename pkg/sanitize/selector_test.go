package sanitize

import (
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSelectRelevant_DropsZeroScores(t *testing.T) {
	target := TargetVehicle{Brand: "Maruti", Model: "Swift"}
	records := []HistoricalRecord{
		{Brand: "Maruti", Model: "Swift"},
		{Brand: "Honda", Model: "City"},
		{Brand: "Maruti", Model: "Baleno"},
	}

	selected := SelectRelevant(records, target, 10)

	assert.Equal(t, 2, len(selected))
	for _, rec := range selected {
		if Score(rec, target) == 0 {
			t.Errorf("zero-score record %s %s survived selection", rec.Brand, rec.Model)
		}
	}
}

func TestSelectRelevant_SortedDescendingStable(t *testing.T) {
	target := TargetVehicle{Brand: "Maruti", Model: "Swift"}
	records := []HistoricalRecord{
		{Brand: "Maruti", Model: "Baleno", Year: "2017"}, // 50
		{Brand: "Maruti", Model: "Swift", Year: "2018"},  // 150
		{Brand: "Maruti", Model: "Baleno", Year: "2019"}, // 50, ties with first
		{Brand: "Suzuki", Model: "Swift", Year: "2020"},  // 100
	}

	selected := SelectRelevant(records, target, 10)

	assert.Equal(t, 4, len(selected))
	for i := 1; i < len(selected); i++ {
		if Score(selected[i], target) > Score(selected[i-1], target) {
			t.Errorf("selection not sorted descending at index %d", i)
		}
	}

	// Tied Balenos keep their ledger order.
	assert.Equal(t, "2017", selected[2].Year)
	assert.Equal(t, "2019", selected[3].Year)
}

func TestSelectRelevant_Truncates(t *testing.T) {
	target := TargetVehicle{Brand: "Maruti", Model: "Swift"}
	var records []HistoricalRecord
	for i := 0; i < 120; i++ {
		records = append(records, HistoricalRecord{Brand: "Maruti", Model: "Swift", Year: fmt.Sprintf("%d", 1990+i)})
	}

	assert.Equal(t, 3, len(SelectRelevant(records, target, 3)))
	assert.Equal(t, DefaultMaxRecords, len(SelectRelevant(records, target, 0)))
}

func TestSelectRelevant_EmptyLedger(t *testing.T) {
	selected := SelectRelevant(nil, TargetVehicle{Brand: "Maruti", Model: "Swift"}, 10)
	assert.Equal(t, 0, len(selected))
}
