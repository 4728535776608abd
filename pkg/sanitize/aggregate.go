package sanitize

import (
	"fmt"
	"sort"
)

const unknownToken = "Unknown"

// Aggregate clusters records by "{brand} {model}" (missing fields become
// "Unknown") and computes per-group count, average margin and distinct
// years. Groups where no record allows a margin computation are dropped:
// they carry no signal and would otherwise divide by zero. Output is sorted
// by count descending, ties in first-seen order.
func Aggregate(records []HistoricalRecord) []AggregatedGroup {
	type bucket struct {
		group     AggregatedGroup
		marginSum float64
		eligible  int
		seenYears map[string]bool
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, rec := range records {
		key := fmt.Sprintf("%s %s", orUnknown(rec.Brand), orUnknown(rec.Model))

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				group:     AggregatedGroup{BrandModel: key},
				seenYears: make(map[string]bool),
			}
			buckets[key] = b
			order = append(order, key)
		}

		b.group.Count++
		if rec.MarginEligible() {
			b.marginSum += rec.Margin()
			b.eligible++
		}
		if rec.Year != "" && !b.seenYears[rec.Year] {
			b.seenYears[rec.Year] = true
			b.group.Years = append(b.group.Years, rec.Year)
		}
	}

	var groups []AggregatedGroup
	for _, key := range order {
		b := buckets[key]
		if b.eligible == 0 {
			continue
		}
		b.group.AvgMargin = b.marginSum / float64(b.eligible)
		groups = append(groups, b.group)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})

	return groups
}

func orUnknown(s string) string {
	if s == "" {
		return unknownToken
	}
	return s
}
