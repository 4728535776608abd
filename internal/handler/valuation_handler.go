package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/AmanPoddar9/autovaluate-pro/internal/cache"
	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/llm"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/sanitize"

	"github.com/gin-gonic/gin"
)

type ValuationStore interface {
	SaveValuation(v *model.Valuation) error
	GetValuations(limit, offset int) ([]model.Valuation, error)
	GetValuationTotal() (int, error)
	GetValuationByID(id int64) (*model.Valuation, error)
}

type LedgerStore interface {
	GetAllRecords() ([]model.LedgerRecord, error)
}

type ValuationHandler struct {
	valuations ValuationStore
	ledger     LedgerStore
	cache      cache.Cache
	llm        llm.ValuationClient
}

func NewValuationHandler(valuations ValuationStore, ledger LedgerStore, c cache.Cache, client llm.ValuationClient) *ValuationHandler {
	return &ValuationHandler{valuations: valuations, ledger: ledger, cache: c, llm: client}
}

func (h *ValuationHandler) CreateValuation(c *gin.Context) {
	var req ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Brand == "" || req.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand and model are required"})
		return
	}

	fingerprint := cache.Fingerprint(req.Brand, req.Model, req.KMDriven)

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(c.Request.Context(), fingerprint); err != nil {
			slog.Warn("cache read failed", "fingerprint", fingerprint, "error", err)
		} else if ok {
			var res ValuationResponse
			if err := json.Unmarshal([]byte(cached), &res); err != nil {
				slog.Warn("discarding unreadable cache entry", "fingerprint", fingerprint, "error", err)
			} else {
				res.Cached = true
				c.JSON(http.StatusOK, res)
				return
			}
		}
	}

	records, err := h.loadRecords(req.Ledger)
	if err != nil {
		slog.Error("error loading ledger records", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	target := sanitize.TargetVehicle{Brand: req.Brand, Model: req.Model}
	insight := sanitize.SanitizeRecords(records, target)

	if sanitize.LooksSensitive(insight.Insights) {
		slog.Warn("insight text tripped sensitivity heuristic", "brand", req.Brand, "model", req.Model)
	}

	result, err := h.llm.Evaluate(llm.ValuationInput{
		Brand:         req.Brand,
		Model:         req.Model,
		KMDriven:      req.KMDriven,
		Insights:      insight.Insights,
		MarginSummary: marginSummary(insight.MarginData),
	})
	if err != nil {
		slog.Error("error evaluating valuation", "brand", req.Brand, "model", req.Model, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Valuation service error"})
		return
	}

	valuation := &model.Valuation{
		Brand:             req.Brand,
		Model:             req.Model,
		Insights:          insight.Insights,
		MarginDescription: marginDescription(insight.MarginData),
		Assessment:        result.Assessment,
		Recommendation:    result.Recommendation,
		Confidence:        result.Confidence,
		ModelUsed:         result.ModelUsed,
		CreatedAt:         time.Now(),
	}
	if insight.MarginData != nil {
		pct := insight.MarginData.Percentage
		valuation.MarginPercentage = &pct
	}

	if err := h.valuations.SaveValuation(valuation); err != nil {
		slog.Error("error saving valuation", "error", err)
	}

	res := toValuationResponse(*valuation)

	if h.cache != nil {
		if payload, err := json.Marshal(res); err == nil {
			if err := h.cache.Set(c.Request.Context(), fingerprint, string(payload), cache.ValuationTTL); err != nil {
				slog.Warn("cache write failed", "fingerprint", fingerprint, "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *ValuationHandler) loadRecords(inlineLedger string) ([]sanitize.HistoricalRecord, error) {
	if inlineLedger != "" {
		return sanitize.ParseLedger(inlineLedger), nil
	}
	rows, err := h.ledger.GetAllRecords()
	if err != nil {
		return nil, err
	}
	return model.ToHistoricalRecords(rows), nil
}

func (h *ValuationHandler) GetValuations(c *gin.Context) {
	limit := getQueryInt("limit", 10, c)
	offset := getQueryInt("offset", 0, c)

	valuations, err := h.valuations.GetValuations(limit, offset)
	if err != nil {
		slog.Error("error fetching valuations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.valuations.GetValuationTotal()
	if err != nil {
		slog.Error("error fetching valuation total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ValuationsResponse{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		History: []ValuationResponse{},
	}

	if len(valuations) > 0 {
		latest := toValuationResponse(valuations[0])
		res.Latest = &latest
		for _, v := range valuations[1:] {
			res.History = append(res.History, toValuationResponse(v))
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *ValuationHandler) GetValuation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid valuation id"})
		return
	}

	valuation, err := h.valuations.GetValuationByID(id)
	if err != nil {
		slog.Error("error fetching valuation", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if valuation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Valuation not found"})
		return
	}

	c.JSON(http.StatusOK, toValuationResponse(*valuation))
}

func toValuationResponse(v model.Valuation) ValuationResponse {
	res := ValuationResponse{
		ID:             v.ID,
		Brand:          v.Brand,
		Model:          v.Model,
		Insights:       v.Insights,
		Assessment:     v.Assessment,
		Recommendation: v.Recommendation,
		Confidence:     v.Confidence,
		ModelUsed:      v.ModelUsed,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
	if v.MarginPercentage != nil {
		res.MarginData = &MarginDataResponse{
			Percentage:  *v.MarginPercentage,
			Description: v.MarginDescription,
		}
	}
	return res
}

func marginSummary(md *sanitize.MarginData) string {
	if md == nil {
		return ""
	}
	return fmt.Sprintf("%.1f%% across %s", md.Percentage, md.Description)
}

func marginDescription(md *sanitize.MarginData) string {
	if md == nil {
		return ""
	}
	return md.Description
}
