package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"

	"github.com/AmanPoddar9/autovaluate-pro/db"
	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
	"github.com/AmanPoddar9/autovaluate-pro/internal/repository"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/llm"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/sanitize"

	"github.com/joho/godotenv"
)

// One-shot valuation: sanitizes the ledger for TARGET_BRAND/TARGET_MODEL,
// asks the LLM and prints the result as JSON.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	brand := os.Getenv("TARGET_BRAND")
	targetModel := os.Getenv("TARGET_MODEL")
	if brand == "" || targetModel == "" {
		log.Fatal("TARGET_BRAND and TARGET_MODEL are required")
	}

	records := loadRecords()
	target := sanitize.TargetVehicle{Brand: brand, Model: targetModel}
	insight := sanitize.SanitizeRecords(records, target)

	if sanitize.LooksSensitive(insight.Insights) {
		slog.Warn("insight text tripped sensitivity heuristic")
	}

	client := newLLMClient()
	if client == nil {
		log.Fatal("no LLM API key configured, set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	}

	input := llm.ValuationInput{
		Brand:    brand,
		Model:    targetModel,
		Insights: insight.Insights,
	}
	if insight.MarginData != nil {
		input.MarginSummary = insight.MarginData.Description
	}

	result, err := client.Evaluate(input)
	if err != nil {
		log.Fatalf("error evaluating valuation: %v", err)
	}

	out := map[string]any{
		"brand":          brand,
		"model":          targetModel,
		"insights":       insight.Insights,
		"assessment":     result.Assessment,
		"recommendation": result.Recommendation,
		"confidence":     result.Confidence,
		"model_used":     result.ModelUsed,
	}
	if insight.MarginData != nil {
		out["margin_data"] = map[string]any{
			"percentage":  insight.MarginData.Percentage,
			"description": insight.MarginData.Description,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("error encoding result: %v", err)
	}
}

func loadRecords() []sanitize.HistoricalRecord {
	if path := os.Getenv("LEDGER_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("error reading ledger file: %v", err)
		}
		return sanitize.ParseLedger(string(data))
	}

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	rows, err := repository.NewLedgerRepository(db.DB).GetAllRecords()
	if err != nil {
		log.Fatalf("error loading ledger records: %v", err)
	}
	return model.ToHistoricalRecords(rows)
}

func newLLMClient() llm.ValuationClient {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	return nil
}
