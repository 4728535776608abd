package sanitize

import "strings"

// Relevance weights. Additive: an exact brand plus exact model scores 150,
// exact brand plus a substring model match scores 125.
const (
	brandMatchScore    = 50
	modelMatchScore    = 100
	modelContainsScore = 75
)

// Score rates how relevant a record is to the target. Comparison is
// case-insensitive throughout; a missing brand or model on either side
// contributes nothing, neither score nor penalty.
func Score(rec HistoricalRecord, target TargetVehicle) int {
	score := 0

	if rec.Brand != "" && target.Brand != "" && strings.EqualFold(rec.Brand, target.Brand) {
		score += brandMatchScore
	}

	if rec.Model != "" && target.Model != "" {
		recModel := strings.ToLower(rec.Model)
		targetModel := strings.ToLower(target.Model)
		switch {
		case recModel == targetModel:
			score += modelMatchScore
		case strings.Contains(recModel, targetModel) || strings.Contains(targetModel, recModel):
			score += modelContainsScore
		}
	}

	return score
}
