package models

// Action is the recommended position for a stock.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// RiskLevel qualifies the risk assessment attached to a recommendation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Recommendation is the canonical investment-recommendation record, whether
// it came from the language model or from the rule-based fallback.
//
// swagger:model Recommendation
type Recommendation struct {
	Action      Action    `json:"action" example:"BUY"`
	Confidence  int       `json:"confidence" example:"85"`
	Analysis    string    `json:"analysis"`
	KeyPoints   []string  `json:"keyPoints"`
	RiskLevel   RiskLevel `json:"riskLevel" example:"Medium"`
	RiskFactors []string  `json:"riskFactors"`
}
