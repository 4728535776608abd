package sanitize

// Option adjusts pipeline behavior.
type Option func(*config)

type config struct {
	maxRecords int
}

// WithMaxRecords overrides how many records survive selection.
func WithMaxRecords(n int) Option {
	return func(c *config) {
		c.maxRecords = n
	}
}

// Sanitize runs the full pipeline over raw ledger text: parse, score,
// select, aggregate, compose. Deterministic for identical inputs; malformed
// or empty input degrades to an informative message, never an error.
func Sanitize(ledgerText string, target TargetVehicle, opts ...Option) ValuationInsight {
	return SanitizeRecords(ParseLedger(ledgerText), target, opts...)
}

// SanitizeRecords is Sanitize for callers that already hold typed records,
// e.g. rows loaded from storage instead of raw text.
func SanitizeRecords(records []HistoricalRecord, target TargetVehicle, opts ...Option) ValuationInsight {
	cfg := config{maxRecords: DefaultMaxRecords}
	for _, opt := range opts {
		opt(&cfg)
	}

	selected := SelectRelevant(records, target, cfg.maxRecords)
	groups := Aggregate(selected)
	return Compose(records, selected, groups, target)
}
