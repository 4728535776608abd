package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/AmanPoddar9/autovaluate-pro/db"
	"github.com/AmanPoddar9/autovaluate-pro/internal/cache"
	"github.com/AmanPoddar9/autovaluate-pro/internal/handler"
	"github.com/AmanPoddar9/autovaluate-pro/internal/repository"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var valuationCache cache.Cache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, running without valuation cache", "error", err)
	} else {
		valuationCache = cache.NewRedisCache(db.Redis)
		defer db.CloseRedis()
	}

	client := newLLMClient()
	if client == nil {
		log.Fatal("no LLM API key configured, set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	}

	ledgerRepo := repository.NewLedgerRepository(db.DB)
	valuationRepo := repository.NewValuationRepository(db.DB)

	valuationHandler := handler.NewValuationHandler(valuationRepo, ledgerRepo, valuationCache, client)
	recordHandler := handler.NewRecordHandler(ledgerRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/valuations", valuationHandler.CreateValuation)
	r.GET("/valuations", valuationHandler.GetValuations)
	r.GET("/valuations/:id", valuationHandler.GetValuation)
	r.GET("/records", recordHandler.GetRecords)
	r.GET("/health", recordHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
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
