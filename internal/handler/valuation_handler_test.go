package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AmanPoddar9/autovaluate-pro/internal/model"
	"github.com/AmanPoddar9/autovaluate-pro/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

const swiftLedger = "Brand,Model,Year,BoughtPrice,SoldPrice\n" +
	"Maruti,Swift,2018,450000,520000\n" +
	"Maruti,Swift,2019,400000,460000"

type fakeValuationStore struct {
	saved      []model.Valuation
	valuations []model.Valuation
	total      int
	err        error
}

func (f *fakeValuationStore) SaveValuation(v *model.Valuation) error {
	if f.err != nil {
		return f.err
	}
	v.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, *v)
	return nil
}

func (f *fakeValuationStore) GetValuations(limit, offset int) ([]model.Valuation, error) {
	return f.valuations, f.err
}

func (f *fakeValuationStore) GetValuationTotal() (int, error) {
	return f.total, f.err
}

func (f *fakeValuationStore) GetValuationByID(id int64) (*model.Valuation, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.valuations {
		if f.valuations[i].ID == id {
			return &f.valuations[i], nil
		}
	}
	return nil, nil
}

type fakeLedgerStore struct {
	records []model.LedgerRecord
	err     error
}

func (f *fakeLedgerStore) GetAllRecords() ([]model.LedgerRecord, error) {
	return f.records, f.err
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

type fakeLLM struct {
	calls  int
	inputs []llm.ValuationInput
	err    error
}

func (f *fakeLLM) Evaluate(input llm.ValuationInput) (*llm.ValuationResult, error) {
	f.calls++
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ValuationResult{
		Assessment:     "Stable resale margins for this model.",
		Recommendation: "buy",
		Confidence:     8,
		ModelUsed:      "test-model",
	}, nil
}

func newTestValuationRouter(store ValuationStore, ledger LedgerStore, c *fakeCache, client llm.ValuationClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var h *ValuationHandler
	if c != nil {
		h = NewValuationHandler(store, ledger, c, client)
	} else {
		h = NewValuationHandler(store, ledger, nil, client)
	}
	r.POST("/valuations", h.CreateValuation)
	r.GET("/valuations", h.GetValuations)
	r.GET("/valuations/:id", h.GetValuation)
	return r
}

func postValuation(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/valuations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateValuation_InlineLedger(t *testing.T) {
	store := &fakeValuationStore{}
	client := &fakeLLM{}
	r := newTestValuationRouter(store, &fakeLedgerStore{}, nil, client)

	w := postValuation(t, r, ValuationRequest{
		Brand:    "Maruti",
		Model:    "Swift",
		KMDriven: 42000,
		Ledger:   swiftLedger,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var res ValuationResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "Maruti", res.Brand)
	assert.Equal(t, "buy", res.Recommendation)
	assert.Equal(t, "test-model", res.ModelUsed)
	assert.Equal(t, false, res.Cached)

	if !strings.Contains(res.Insights, "Priority: exact Maruti Swift transactions") {
		t.Errorf("missing priority header:\n%s", res.Insights)
	}
	if res.MarginData == nil {
		t.Fatal("expected margin data")
	}
	if math.Abs(res.MarginData.Percentage-15.2777) > 0.01 {
		t.Errorf("margin percentage: got %f", res.MarginData.Percentage)
	}
	assert.Equal(t, "2 similar Maruti Swift transactions", res.MarginData.Description)

	// The prompt the model sees carries Lakhs figures, never raw prices.
	assert.Equal(t, 1, client.calls)
	if strings.Contains(client.inputs[0].Insights, "450000") {
		t.Errorf("raw price leaked to LLM input:\n%s", client.inputs[0].Insights)
	}

	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, "Maruti", store.saved[0].Brand)
}

func TestCreateValuation_ValidatesRequest(t *testing.T) {
	r := newTestValuationRouter(&fakeValuationStore{}, &fakeLedgerStore{}, nil, &fakeLLM{})

	w := postValuation(t, r, ValuationRequest{Model: "Swift"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postValuation(t, r, ValuationRequest{Brand: "Maruti"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateValuation_LLMError(t *testing.T) {
	r := newTestValuationRouter(&fakeValuationStore{}, &fakeLedgerStore{}, nil, &fakeLLM{err: errors.New("model down")})

	w := postValuation(t, r, ValuationRequest{Brand: "Maruti", Model: "Swift", Ledger: swiftLedger})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateValuation_LedgerStoreError(t *testing.T) {
	ledger := &fakeLedgerStore{err: errors.New("DB down")}
	r := newTestValuationRouter(&fakeValuationStore{}, ledger, nil, &fakeLLM{})

	w := postValuation(t, r, ValuationRequest{Brand: "Maruti", Model: "Swift"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateValuation_UsesStoredLedger(t *testing.T) {
	bought := 450000.0
	sold := 520000.0
	ledger := &fakeLedgerStore{records: []model.LedgerRecord{
		{Brand: "Maruti", Model: "Swift", Year: "2018", BoughtPrice: &bought, SoldPrice: &sold},
	}}
	client := &fakeLLM{}
	r := newTestValuationRouter(&fakeValuationStore{}, ledger, nil, client)

	w := postValuation(t, r, ValuationRequest{Brand: "Maruti", Model: "Swift"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res ValuationResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	if res.MarginData == nil {
		t.Fatal("expected margin data from stored ledger")
	}
	assert.Equal(t, "1 similar Maruti Swift transactions", res.MarginData.Description)
}

func TestCreateValuation_CacheHitSkipsLLM(t *testing.T) {
	c := newFakeCache()
	client := &fakeLLM{}
	r := newTestValuationRouter(&fakeValuationStore{}, &fakeLedgerStore{}, c, client)

	req := ValuationRequest{Brand: "Maruti", Model: "Swift", KMDriven: 42000, Ledger: swiftLedger}

	first := postValuation(t, r, req)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, client.calls)

	// km in the same 10k bucket hits the same entry.
	req.KMDriven = 47000
	second := postValuation(t, r, req)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, client.calls)

	var res ValuationResponse
	json.Unmarshal(second.Body.Bytes(), &res)
	assert.Equal(t, true, res.Cached)
	assert.Equal(t, "buy", res.Recommendation)
}

func TestGetValuations_DBError(t *testing.T) {
	store := &fakeValuationStore{err: errors.New("DB down")}
	r := newTestValuationRouter(store, &fakeLedgerStore{}, nil, &fakeLLM{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/valuations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetValuations_WithResults(t *testing.T) {
	now := time.Now()
	pct := 15.28
	store := &fakeValuationStore{
		valuations: []model.Valuation{
			{ID: 2, Brand: "Maruti", Model: "Swift", MarginPercentage: &pct, MarginDescription: "2 similar Maruti Swift transactions", CreatedAt: now},
			{ID: 1, Brand: "Honda", Model: "City", CreatedAt: now.Add(-24 * time.Hour)},
		},
		total: 2,
	}
	r := newTestValuationRouter(store, &fakeLedgerStore{}, nil, &fakeLLM{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/valuations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ValuationsResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.NotEqual(t, nil, res.Latest)
	assert.Equal(t, "Maruti", res.Latest.Brand)
	assert.Equal(t, 15.28, res.Latest.MarginData.Percentage)
	assert.Equal(t, 1, len(res.History))
	assert.Equal(t, (*MarginDataResponse)(nil), res.History[0].MarginData)
	assert.Equal(t, 2, res.Total)
}

func TestGetValuation_NotFound(t *testing.T) {
	r := newTestValuationRouter(&fakeValuationStore{}, &fakeLedgerStore{}, nil, &fakeLLM{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/valuations/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
