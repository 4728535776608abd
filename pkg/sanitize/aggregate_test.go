package sanitize

import (
	"math"
	"testing"

	"github.com/go-playground/assert/v2"
)

func priced(brand, model, year string, bought, sold float64) HistoricalRecord {
	rec := NewRecord()
	rec.Brand = brand
	rec.Model = model
	rec.Year = year
	rec.BoughtPrice = bought
	rec.SoldPrice = sold
	return rec
}

func TestAggregate_GroupsAndMargins(t *testing.T) {
	records := []HistoricalRecord{
		priced("Maruti", "Swift", "2018", 450000, 520000), // +15.56%
		priced("Maruti", "Swift", "2019", 400000, 460000), // +15.0%
		priced("Hyundai", "i20", "2020", 500000, 550000),  // +10.0%
	}

	groups := Aggregate(records)

	assert.Equal(t, 2, len(groups))

	swift := groups[0]
	assert.Equal(t, "Maruti Swift", swift.BrandModel)
	assert.Equal(t, 2, swift.Count)
	assert.Equal(t, []string{"2018", "2019"}, swift.Years)
	if math.Abs(swift.AvgMargin-15.2777) > 0.001 {
		t.Errorf("avg margin: got %f, want ~15.2777", swift.AvgMargin)
	}

	i20 := groups[1]
	assert.Equal(t, "Hyundai i20", i20.BrandModel)
	assert.Equal(t, 1, i20.Count)
	if math.Abs(i20.AvgMargin-10.0) > 0.001 {
		t.Errorf("avg margin: got %f, want 10.0", i20.AvgMargin)
	}
}

func TestAggregate_SortedByCountDescending(t *testing.T) {
	records := []HistoricalRecord{
		priced("Hyundai", "i20", "2020", 500000, 550000),
		priced("Maruti", "Swift", "2018", 450000, 520000),
		priced("Maruti", "Swift", "2019", 400000, 460000),
	}

	groups := Aggregate(records)

	assert.Equal(t, "Maruti Swift", groups[0].BrandModel)
	assert.Equal(t, "Hyundai i20", groups[1].BrandModel)
}

func TestAggregate_OmitsGroupsWithoutEligibleRecords(t *testing.T) {
	noPrices := NewRecord()
	noPrices.Brand = "Tata"
	noPrices.Model = "Nexon"

	zeroBought := priced("Kia", "Seltos", "2021", 0, 500000)

	records := []HistoricalRecord{
		noPrices,
		zeroBought,
		priced("Maruti", "Swift", "2018", 450000, 520000),
	}

	groups := Aggregate(records)

	assert.Equal(t, 1, len(groups))
	assert.Equal(t, "Maruti Swift", groups[0].BrandModel)
}

func TestAggregate_MixedEligibilityWithinGroup(t *testing.T) {
	partial := NewRecord()
	partial.Brand = "Maruti"
	partial.Model = "Swift"
	partial.Year = "2020"
	partial.SoldPrice = 500000 // bought absent: excluded from margin, counted in group

	records := []HistoricalRecord{
		priced("Maruti", "Swift", "2018", 400000, 440000), // +10%
		partial,
	}

	groups := Aggregate(records)

	assert.Equal(t, 1, len(groups))
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, []string{"2018", "2020"}, groups[0].Years)
	if math.Abs(groups[0].AvgMargin-10.0) > 0.001 {
		t.Errorf("avg margin over eligible records only: got %f, want 10.0", groups[0].AvgMargin)
	}
}

func TestAggregate_UnknownTokenForMissingFields(t *testing.T) {
	rec := priced("", "Swift", "2018", 400000, 440000)

	groups := Aggregate([]HistoricalRecord{rec})

	assert.Equal(t, 1, len(groups))
	assert.Equal(t, "Unknown Swift", groups[0].BrandModel)
}

func TestAggregate_DedupesYearsInFirstSeenOrder(t *testing.T) {
	records := []HistoricalRecord{
		priced("Maruti", "Swift", "2019", 400000, 440000),
		priced("Maruti", "Swift", "2018", 400000, 440000),
		priced("Maruti", "Swift", "2019", 400000, 440000),
	}

	groups := Aggregate(records)

	assert.Equal(t, []string{"2019", "2018"}, groups[0].Years)
}
