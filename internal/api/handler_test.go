package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/andresilva/stocksight/internal/domain/dto"
	"github.com/andresilva/stocksight/internal/domain/models"
)

type stubQuoteService struct {
	gotSymbol string
}

func (s *stubQuoteService) GetStockData(_ context.Context, symbol string) (models.Quote, []models.ChartPoint) {
	s.gotSymbol = symbol
	return models.Quote{Symbol: symbol, Name: symbol, Price: 189.84},
		[]models.ChartPoint{{Date: "Aug 27", Price: 188.3}, {Date: "Aug 28", Price: 189.84}}
}

type stubAdviceService struct {
	gotSymbol string
	gotQuote  models.Quote
}

func (s *stubAdviceService) Analyze(_ context.Context, symbol string, quote models.Quote) models.Recommendation {
	s.gotSymbol = symbol
	s.gotQuote = quote
	return models.Recommendation{
		Action:      models.ActionBuy,
		Confidence:  82,
		Analysis:    "Looks fine.",
		KeyPoints:   []string{"one"},
		RiskLevel:   models.RiskMedium,
		RiskFactors: []string{},
	}
}

func newTestRouter() (*gin.Engine, *stubQuoteService, *stubAdviceService) {
	gin.SetMode(gin.TestMode)
	quotes := &stubQuoteService{}
	advice := &stubAdviceService{}
	h := NewHandler(quotes, advice)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/stock-data", h.GetStockData)
	v1.POST("/ai-analysis", h.GetAnalysis)
	return r, quotes, advice
}

func TestGetStockData_RequiresSymbol(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{name: "missing", url: "/api/v1/stock-data"},
		{name: "blank", url: "/api/v1/stock-data?symbol=%20%20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _ := newTestRouter()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400", w.Code)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Message != "stock symbol is required" {
				t.Fatalf("message %q", resp.Message)
			}
		})
	}
}

func TestGetStockData_Success(t *testing.T) {
	r, quotes, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stock-data?symbol=aapl", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if quotes.gotSymbol != "AAPL" {
		t.Fatalf("symbol %q, want upper-cased AAPL", quotes.gotSymbol)
	}

	var resp dto.StockDataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Price != 189.84 || len(resp.ChartData) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ChartData[len(resp.ChartData)-1].Price != resp.Price {
		t.Fatalf("chart endpoint should carry the headline price")
	}
}

func TestGetAnalysis_Success(t *testing.T) {
	r, _, advice := newTestRouter()
	body := `{"symbol":"AAPL","stockData":{"symbol":"AAPL","price":189.84,"change":1.35}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-analysis", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", w.Code, w.Body.String())
	}
	if advice.gotSymbol != "AAPL" || advice.gotQuote.Price != 189.84 {
		t.Fatalf("service inputs: symbol=%q quote=%+v", advice.gotSymbol, advice.gotQuote)
	}

	var rec models.Recommendation
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if rec.Action != models.ActionBuy || rec.Confidence != 82 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
}

func TestGetAnalysis_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "no symbol", body: `{"stockData":{"price":1}}`},
		{name: "blank symbol", body: `{"symbol":"  ","stockData":{"price":1}}`},
		{name: "no stock data", body: `{"symbol":"AAPL"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _ := newTestRouter()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-analysis", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400", w.Code)
			}
		})
	}
}

func TestGetAnalysis_UnreadableBodyIs500(t *testing.T) {
	r, _, _ := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-analysis", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Message != "failed to analyze stock data" {
		t.Fatalf("message %q", resp.Message)
	}
}
