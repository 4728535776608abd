package sanitize

import (
	"fmt"
	"strings"
)

const (
	noDataMessage      = "No historical data available."
	noValidDataMessage = "No valid historical data found."

	// Listing every exact match would leak the ledger wholesale; five lines
	// is enough detail for the model to reason over.
	maxExactLines = 5

	lakh = 100000.0
)

// Compose renders the privacy-safe prose report plus the structured margin
// summary. Exact target matches are listed individually because they are the
// most decision-relevant signal; when the exact model is unseen, brand-level
// aggregates preserve some signal; otherwise MarginData stays nil.
//
// Absolute prices appear only as rounded Lakhs figures inside free text,
// never as machine-readable fields.
func Compose(all, selected []HistoricalRecord, groups []AggregatedGroup, target TargetVehicle) ValuationInsight {
	if len(all) == 0 {
		return ValuationInsight{Insights: noDataMessage}
	}
	if !anyUsable(all) {
		return ValuationInsight{Insights: noValidDataMessage}
	}

	var lines []string
	var marginData *MarginData

	exact := exactMatches(selected, target)
	if len(exact) > 0 {
		lines = append(lines, fmt.Sprintf("Priority: exact %s %s transactions from recent history:", target.Brand, target.Model))

		limit := len(exact)
		if limit > maxExactLines {
			limit = maxExactLines
		}
		for _, rec := range exact[:limit] {
			lines = append(lines, transactionLine(rec))
		}

		marginSum := 0.0
		priced := 0
		for _, rec := range exact {
			if rec.MarginEligible() {
				marginSum += rec.Margin()
				priced++
			}
		}
		if priced > 0 {
			avg := marginSum / float64(priced)
			lines = append(lines, fmt.Sprintf("Average margin across %d exact transactions: %.1f%%.", priced, avg))
			marginData = &MarginData{
				Percentage:  avg,
				Description: fmt.Sprintf("%d similar %s %s transactions", priced, target.Brand, target.Model),
			}
		}
	} else {
		lines = append(lines, fmt.Sprintf("No exact %s %s transactions found in history.", target.Brand, target.Model))

		brandGroups := groupsForBrand(groups, target.Brand)
		if len(brandGroups) > 0 {
			weightedSum := 0.0
			total := 0
			for _, g := range brandGroups {
				weightedSum += g.AvgMargin * float64(g.Count)
				total += g.Count
			}
			weighted := weightedSum / float64(total)
			lines = append(lines, fmt.Sprintf("Brand fallback: %d %s transactions across %d model groups, average margin %.1f%%.", total, target.Brand, len(brandGroups), weighted))
			marginData = &MarginData{
				Percentage:  weighted,
				Description: fmt.Sprintf("%d %s transactions (brand average)", total, target.Brand),
			}
		} else {
			lines = append(lines, fmt.Sprintf("No %s brand transactions found in history.", target.Brand))
		}
	}

	lines = append(lines, fmt.Sprintf("Context: %d total transactions in ledger.", len(all)))

	return ValuationInsight{
		Insights:   strings.Join(lines, "\n"),
		MarginData: marginData,
	}
}

// exactMatches filters to records whose brand AND model both equal the
// target, stricter than the scorer's substring matching.
func exactMatches(records []HistoricalRecord, target TargetVehicle) []HistoricalRecord {
	var exact []HistoricalRecord
	for _, rec := range records {
		if strings.EqualFold(rec.Brand, target.Brand) && strings.EqualFold(rec.Model, target.Model) {
			exact = append(exact, rec)
		}
	}
	return exact
}

func groupsForBrand(groups []AggregatedGroup, brand string) []AggregatedGroup {
	if brand == "" {
		return nil
	}
	needle := strings.ToLower(brand)
	var matched []AggregatedGroup
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.BrandModel), needle) {
			matched = append(matched, g)
		}
	}
	return matched
}

func transactionLine(rec HistoricalRecord) string {
	date := rec.Date
	if date == "" {
		date = "N/A"
	}

	var desc []string
	for _, part := range []string{rec.Brand, rec.Model, rec.Variant, rec.Year} {
		if part != "" {
			desc = append(desc, part)
		}
	}

	margin := "N/A"
	if rec.MarginEligible() {
		margin = fmt.Sprintf("%.1f%%", rec.Margin())
	}

	return fmt.Sprintf("- [%s] %s: bought %s, sold %s, margin %s",
		date, strings.Join(desc, " "), lakhs(rec.BoughtPrice, rec.HasBoughtPrice()), lakhs(rec.SoldPrice, rec.HasSoldPrice()), margin)
}

// lakhs renders an absolute price in hundred-thousands with two decimals,
// coarse enough to blur the exact figure while keeping the magnitude.
func lakhs(price float64, present bool) string {
	if !present {
		return "N/A"
	}
	return fmt.Sprintf("%.2f Lakhs", price/lakh)
}

func anyUsable(records []HistoricalRecord) bool {
	for _, rec := range records {
		if rec.Brand != "" || rec.Model != "" || rec.HasBoughtPrice() || rec.HasSoldPrice() {
			return true
		}
	}
	return false
}
