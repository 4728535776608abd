package handler

type ValuationRequest struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	KMDriven int    `json:"km_driven"`
	Ledger   string `json:"ledger"`
}

type MarginDataResponse struct {
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

type ValuationResponse struct {
	ID             int64               `json:"id"`
	Brand          string              `json:"brand"`
	Model          string              `json:"model"`
	Insights       string              `json:"insights"`
	MarginData     *MarginDataResponse `json:"margin_data"`
	Assessment     string              `json:"assessment"`
	Recommendation string              `json:"recommendation"`
	Confidence     int                 `json:"confidence"`
	ModelUsed      string              `json:"model_used"`
	Cached         bool                `json:"cached"`
	CreatedAt      string              `json:"created_at"`
}

type ValuationsResponse struct {
	Latest  *ValuationResponse  `json:"latest"`
	History []ValuationResponse `json:"history"`
	Total   int                 `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}

type RecordResponse struct {
	ID          int64    `json:"id"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Variant     string   `json:"variant"`
	Year        string   `json:"year"`
	Date        string   `json:"date"`
	BoughtPrice *float64 `json:"bought_price"`
	SoldPrice   *float64 `json:"sold_price"`
	Source      string   `json:"source"`
	ImportedAt  string   `json:"imported_at"`
}

type RecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}
