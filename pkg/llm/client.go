package llm

const promptVersion = "v1"
const valuationSystemPrompt = `You are a used-vehicle pricing analyst for the Indian market. You receive a privacy-sanitized summary of historical dealer transactions: margin percentages and rounded Lakhs figures only, never raw prices.

Rules:
1. Base your judgement only on the provided summary
2. If the summary says no historical data is available, say so and lower your confidence
3. Be specific about the margin signal: strong, weak, or absent
4. Never invent transaction history that is not in the summary

Output as JSON only, no other text:
{
  "assessment": "two or three sentences on expected resale profitability",
  "recommendation": "one of: buy, negotiate, avoid",
  "confidence": 1-10 how well the historical data supports the assessment
}`

type ValuationInput struct {
	Brand         string
	Model         string
	KMDriven      int
	Insights      string
	MarginSummary string
}

type ValuationResult struct {
	Assessment     string
	Recommendation string
	Confidence     int
	PromptVersion  string
	ModelUsed      string
}

type ValuationClient interface {
	Evaluate(input ValuationInput) (*ValuationResult, error)
}
