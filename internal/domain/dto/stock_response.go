package dto

import "github.com/andresilva/stocksight/internal/domain/models"

// StockDataResponse is the JSON structure returned by
// GET /api/v1/stock-data: the normalized quote plus its daily chart series.
//
// swagger:model StockDataResponse
type StockDataResponse struct {
	models.Quote
	ChartData []models.ChartPoint `json:"chartData"`
}

// AnalysisRequest is the JSON body accepted by POST /api/v1/ai-analysis.
// Both fields are required; StockData is a pointer so a missing field can be
// told apart from a zero-valued quote.
//
// swagger:model AnalysisRequest
type AnalysisRequest struct {
	Symbol    string        `json:"symbol" example:"AAPL"`
	StockData *models.Quote `json:"stockData"`
}
