package service

import (
	"fmt"
	"math"

	"github.com/andresilva/stocksight/internal/domain/models"
)

// ruleBased derives a recommendation from the quote alone.
//
// Rules:
//   - BUY when the change is non-negative and the percent move beats +2;
//     SELL when negative and below -2; HOLD otherwise.
//   - Confidence is 75 plus a jitter in [0, 20).
//   - Risk is High when the absolute percent move exceeds 5, else Medium.
func (s *recommendationService) ruleBased(symbol string, q models.Quote) models.Recommendation {
	isPositive := q.Change >= 0

	action := models.ActionHold
	switch {
	case isPositive && q.ChangePercent > 2:
		action = models.ActionBuy
	case !isPositive && q.ChangePercent < -2:
		action = models.ActionSell
	}

	riskLevel := models.RiskMedium
	if q.ChangePercent > 5 || q.ChangePercent < -5 {
		riskLevel = models.RiskHigh
	}

	volumeM := float64(q.Volume) / 1_000_000

	return models.Recommendation{
		Action:     action,
		Confidence: s.synth.ConfidenceJitter(),
		Analysis: fmt.Sprintf(
			"Based on the current market data for %s, the stock is trading at $%.2f, representing a %s of %.2f%% from the previous close.\n\n"+
				"The stock shows %s momentum with a current price %s the opening price. Volume activity of %.2fM shares indicates %s market interest.\n\n"+
				"Technical indicators suggest %s. Investors should consider their risk tolerance and investment horizon before making a decision.",
			symbol,
			q.Price,
			gainOrLoss(isPositive),
			math.Abs(q.ChangePercent),
			posOrNeg(isPositive),
			aboveOrBelow(isPositive),
			volumeM,
			interestQualifier(q.Volume),
			outlook(action),
		),
		KeyPoints: []string{
			fmt.Sprintf("Current price movement: %+.2f%%", q.ChangePercent),
			fmt.Sprintf("Trading range: $%.2f - $%.2f", q.Low, q.High),
			fmt.Sprintf("Volume: %.2fM shares", volumeM),
			momentumStatement(action),
			"Consider market conditions and company fundamentals",
		},
		RiskLevel: riskLevel,
		RiskFactors: []string{
			"Market volatility",
			"Economic conditions",
			"Company-specific factors",
		},
	}
}

func gainOrLoss(positive bool) string {
	if positive {
		return "gain"
	}
	return "loss"
}

func posOrNeg(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}

func aboveOrBelow(positive bool) string {
	if positive {
		return "above"
	}
	return "below"
}

// interestQualifier labels volume above five million shares as strong.
func interestQualifier(volume int64) string {
	if volume > 5_000_000 {
		return "strong"
	}
	return "moderate"
}

func outlook(action models.Action) string {
	switch action {
	case models.ActionBuy:
		return "potential upside"
	case models.ActionSell:
		return "potential downside"
	default:
		return "sideways movement"
	}
}

func momentumStatement(action models.Action) string {
	switch action {
	case models.ActionBuy:
		return "Positive momentum indicators"
	case models.ActionSell:
		return "Negative momentum indicators"
	default:
		return "Neutral market sentiment"
	}
}
