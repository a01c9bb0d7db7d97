package service

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/andresilva/stocksight/internal/domain/models"
	"github.com/andresilva/stocksight/internal/llm"
	"github.com/andresilva/stocksight/internal/logger"
	"github.com/andresilva/stocksight/internal/mockdata"
)

const systemPrompt = "You are a professional financial analyst with expertise in stock market analysis. " +
	"Provide clear, data-driven investment recommendations."

const promptTemplate = `Analyze the following stock data and provide a comprehensive investment recommendation.

Stock Symbol: %s
Current Price: $%.2f
Change: %+.2f (%+.2f%%)
Volume: %s
High: $%.2f
Low: $%.2f
Open: $%.2f
Previous Close: $%.2f

Please provide:
1. A clear recommendation (BUY, SELL, or HOLD)
2. Your confidence level (0-100%%)
3. A detailed analysis explaining your reasoning
4. Key points supporting your recommendation
5. Risk assessment with risk level (Low, Medium, High) and key risk factors

Format your response as JSON with the following structure:
{
  "action": "BUY|SELL|HOLD",
  "confidence": 85,
  "analysis": "Detailed analysis text...",
  "keyPoints": ["Point 1", "Point 2", "Point 3"],
  "riskLevel": "Low|Medium|High",
  "riskFactors": ["Risk factor 1", "Risk factor 2"]
}`

// RecommendationService produces an investment recommendation for a quote.
// Like QuoteService it never fails: when the model is unconfigured,
// unreachable, or unintelligible, the rule-based engine answers instead.
type RecommendationService interface {
	Analyze(ctx context.Context, symbol string, quote models.Quote) models.Recommendation
}

type recommendationService struct {
	completer llm.Completer // nil when no credential is configured
	synth     *mockdata.Synthesizer
}

// NewRecommendationService builds a RecommendationService. completer may be
// nil, which pins the service to the rule-based fallback.
func NewRecommendationService(completer llm.Completer, synth *mockdata.Synthesizer) RecommendationService {
	return &recommendationService{completer: completer, synth: synth}
}

// Analyze asks the model for a recommendation and normalizes whatever comes
// back; every failure along the way is absorbed by the rule-based fallback.
func (s *recommendationService) Analyze(ctx context.Context, symbol string, quote models.Quote) models.Recommendation {
	if s.completer == nil {
		return s.ruleBased(symbol, quote)
	}

	response, err := s.completer.Complete(ctx, systemPrompt, buildPrompt(symbol, quote))
	if err != nil {
		logger.L().Warn().Err(err).Str("symbol", symbol).Msg("completion failed, using rule-based recommendation")
		return s.ruleBased(symbol, quote)
	}

	return normalizeResponse(response)
}

// buildPrompt renders the fixed analysis prompt: currency fields with two
// decimals, sign-prefixed change figures, thousands-grouped volume.
func buildPrompt(symbol string, q models.Quote) string {
	return fmt.Sprintf(promptTemplate,
		symbol,
		q.Price,
		q.Change,
		q.ChangePercent,
		humanize.Comma(q.Volume),
		q.High,
		q.Low,
		q.Open,
		q.PreviousClose,
	)
}
