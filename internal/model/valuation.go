package model

import "time"

// Valuation is one completed valuation run: the sanitized insight that was
// sent to the model plus what came back. Raw ledger prices are never stored
// here, only the prose report and margin percentages.
type Valuation struct {
	ID                int64
	Brand             string
	Model             string
	Insights          string
	MarginPercentage  *float64
	MarginDescription string
	Assessment        string
	Recommendation    string
	Confidence        int
	ModelUsed         string
	CreatedAt         time.Time
}
