package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andresilva/stocksight/internal/domain/dto"
	"github.com/andresilva/stocksight/internal/service"
)

// Handler provides HTTP handlers for the quote and recommendation endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters and request bodies
//   - Delegate to the service layer (which never fails downstream)
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	quotes service.QuoteService
	advice service.RecommendationService
}

// NewHandler constructs a Handler over the two services.
func NewHandler(quotes service.QuoteService, advice service.RecommendationService) *Handler {
	return &Handler{quotes: quotes, advice: advice}
}

// GetStockData handles GET /api/v1/stock-data requests.
//
// The only client-visible failure is a missing symbol; provider outages and
// rate limits are absorbed by the service layer's synthesized fallback.
//
// GetStockData godoc
// @Summary      Get stock quote and chart data
// @Description  Returns the normalized quote and a 30-day price series for the given symbol
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        symbol  query     string  true  "Stock symbol" example(AAPL)
// @Success      200     {object}  dto.StockDataResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/stock-data [get]
func (h *Handler) GetStockData(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("stock symbol is required", nil))
		return
	}

	quote, chart := h.quotes.GetStockData(c.Request.Context(), symbol)

	c.JSON(http.StatusOK, dto.StockDataResponse{
		Quote:     quote,
		ChartData: chart,
	})
}

// GetAnalysis handles POST /api/v1/ai-analysis requests.
//
// Error contract:
//   - 400 when the body is valid JSON but symbol or stockData is missing
//   - 500 when the body never parsed, i.e. the inputs required to build
//     even a fallback recommendation were never captured
//
// GetAnalysis godoc
// @Summary      Get an investment recommendation
// @Description  Returns an AI (or rule-based fallback) recommendation for the given quote
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalysisRequest  true  "Symbol and quote to analyze"
// @Success      200      {object}  models.Recommendation  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/ai-analysis [post]
func (h *Handler) GetAnalysis(c *gin.Context) {
	var req dto.AnalysisRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to analyze stock data", err))
		return
	}

	if strings.TrimSpace(req.Symbol) == "" || req.StockData == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol and stock data are required", nil))
		return
	}

	rec := h.advice.Analyze(c.Request.Context(), req.Symbol, *req.StockData)

	c.JSON(http.StatusOK, rec)
}
