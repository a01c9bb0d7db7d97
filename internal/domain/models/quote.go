package models

// Quote is the canonical stock-quote record produced by the quote service.
// Every numeric field is always a finite number: the normalizer substitutes
// a default (0 unless noted) for anything the provider omits or mangles, so
// consumers never have to guard against NaN or missing values.
//
// swagger:model Quote
type Quote struct {
	Symbol        string  `json:"symbol" example:"AAPL"`
	Name          string  `json:"name" example:"AAPL"`
	Price         float64 `json:"price" example:"189.84"`
	Change        float64 `json:"change" example:"1.35"`
	ChangePercent float64 `json:"changePercent" example:"0.72"`
	Volume        int64   `json:"volume" example:"52164800"`
	High          float64 `json:"high" example:"190.41"`
	Low           float64 `json:"low" example:"187.52"`
	Open          float64 `json:"open" example:"188.20"`
	PreviousClose float64 `json:"previousClose" example:"188.49"`
}

// ChartPoint is one entry of a daily price series. Date carries a short
// display label ("Jan 2"); series are always chronologically ascending and
// hold at most 30 points plus the freshness patch for today.
//
// swagger:model ChartPoint
type ChartPoint struct {
	Date  string  `json:"date" example:"Aug 28"`
	Price float64 `json:"price" example:"189.84"`
}
