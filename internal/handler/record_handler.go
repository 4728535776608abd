package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/AmanPoddar9/autovaluate-pro/internal/model"

	"github.com/gin-gonic/gin"
)

type RecordStore interface {
	GetRecords(limit, offset int) ([]model.LedgerRecord, error)
	GetRecordTotal() (int, error)
}

type RecordHandler struct {
	repository RecordStore
}

func NewRecordHandler(repository RecordStore) *RecordHandler {
	return &RecordHandler{repository: repository}
}

func (h *RecordHandler) GetRecords(c *gin.Context) {
	limit := getQueryInt("limit", 50, c)
	offset := getQueryInt("offset", 0, c)

	records, err := h.repository.GetRecords(limit, offset)
	if err != nil {
		slog.Error("error fetching ledger records", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetRecordTotal()
	if err != nil {
		slog.Error("error fetching ledger total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := RecordsResponse{
		Records: []RecordResponse{},
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, rec := range records {
		res.Records = append(res.Records, toRecordResponse(rec))
	}

	c.JSON(http.StatusOK, res)
}

func (h *RecordHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toRecordResponse(rec model.LedgerRecord) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		Brand:       rec.Brand,
		Model:       rec.Model,
		Variant:     rec.Variant,
		Year:        rec.Year,
		Date:        rec.Date,
		BoughtPrice: rec.BoughtPrice,
		SoldPrice:   rec.SoldPrice,
		Source:      rec.Source,
		ImportedAt:  rec.ImportedAt.Format(time.RFC3339),
	}
}
