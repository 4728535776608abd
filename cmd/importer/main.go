package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/AmanPoddar9/autovaluate-pro/db"
	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
	"github.com/AmanPoddar9/autovaluate-pro/internal/repository"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/ledgerfeed"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/sanitize"

	"github.com/joho/godotenv"
)

// Imports a ledger export into postgres, either from the dealer network
// feed (DEALER_FEED_URL) or a local CSV file (LEDGER_FILE).
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	text, source := loadLedger()
	if text == "" {
		slog.Error("no ledger source configured, set DEALER_FEED_URL or LEDGER_FILE")
		return
	}

	records := sanitize.ParseLedger(text)
	if len(records) == 0 {
		slog.Info("ledger contained no parseable rows, exiting", "source", source)
		return
	}

	repo := repository.NewLedgerRepository(db.DB)

	var saved, failed int
	for _, rec := range records {
		row := model.FromHistorical(rec, source)
		if err := repo.SaveRecord(&row); err != nil {
			slog.Error("error saving ledger record", "brand", row.Brand, "model", row.Model, "error", err)
			failed++
			continue
		}
		saved++
	}

	slog.Info("ledger import finished", "source", source, "saved", saved, "failed", failed)
}

func loadLedger() (string, string) {
	if feedURL := os.Getenv("DEALER_FEED_URL"); feedURL != "" {
		client := ledgerfeed.NewDealerClient(feedURL, os.Getenv("DEALER_FEED_API_KEY"))
		text, err := client.Fetch()
		if err != nil {
			log.Fatalf("error fetching dealer feed: %v", err)
		}
		return text, client.Name()
	}

	if path := os.Getenv("LEDGER_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("error reading ledger file: %v", err)
		}
		return string(data), path
	}

	return "", ""
}
