// Package mockdata synthesizes plausible quote and chart data for the
// failover path. Output is self-consistent (derived fields agree with the
// base price) so the UI renders it exactly like live data.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/andresilva/stocksight/internal/domain/models"
)

// ChartDays is the length of a synthesized daily series.
const ChartDays = 30

// DateLabel is the short display format used on the chart axis ("Aug 28").
const DateLabel = "Jan 2"

// Synthesizer produces fallback quotes and chart series from an injected
// random source and clock. Safe for concurrent use; rand.Rand is not, so
// access to it is serialized.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New builds a Synthesizer around rng. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rng: rng, now: time.Now}
}

// WithClock overrides the time source. Tests use this to pin "today".
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	s.now = now
	return s
}

// Quote synthesizes a full quote for symbol:
//
//	base          = U[100, 300)
//	change        = U[-5, 5)
//	changePercent = change / base * 100
//	high/low      = base ± U[0, 5)
//	open          = base + change/2
//	previousClose = base - change
//	volume        = U[1_000_000, 11_000_000)
//
// All prices are rounded to cents. The returned chart is anchored at the
// synthesized base price.
func (s *Synthesizer) Quote(symbol string) (models.Quote, []models.ChartPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	basePrice := 100 + s.rng.Float64()*200
	change := (s.rng.Float64() - 0.5) * 10
	changePercent := change / basePrice * 100

	q := models.Quote{
		Symbol:        symbol,
		Name:          fmt.Sprintf("%s Inc.", symbol),
		Price:         round2(basePrice),
		Change:        round2(change),
		ChangePercent: round2(changePercent),
		Volume:        int64(s.rng.Intn(10_000_000)) + 1_000_000,
		High:          round2(basePrice + s.rng.Float64()*5),
		Low:           round2(basePrice - s.rng.Float64()*5),
		Open:          round2(basePrice + change*0.5),
		PreviousClose: round2(basePrice - change),
	}
	return q, s.chart(basePrice)
}

// Chart synthesizes a ChartDays-point series anchored at basePrice, oldest
// first. Prices start 5% below the anchor and trend up to it, with a
// uniform jitter of ±2.5% and a sine ripple on top; the newest point is
// then pinned near (not exactly at) the anchor. Dates are the consecutive
// calendar days ending today.
func (s *Synthesizer) Chart(basePrice float64) []models.ChartPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart(basePrice)
}

func (s *Synthesizer) chart(basePrice float64) []models.ChartPoint {
	today := s.now()
	variationRange := basePrice * 0.05
	startingPrice := basePrice * 0.95

	data := make([]models.ChartPoint, 0, ChartDays)
	for i := ChartDays - 1; i >= 0; i-- {
		trendFactor := float64(ChartDays-1-i) / float64(ChartDays-1)
		randomVariation := (s.rng.Float64() - 0.5) * variationRange
		smoothWave := math.Sin(float64(i)/5) * variationRange * 0.3
		price := startingPrice + (basePrice-startingPrice)*trendFactor + randomVariation + smoothWave

		data = append(data, models.ChartPoint{
			Date:  today.AddDate(0, 0, -i).Format(DateLabel),
			Price: round2(price),
		})
	}

	// Pin the newest point close to the anchor so the chart endpoint tracks
	// the headline price without matching it exactly.
	data[len(data)-1].Price = round2(basePrice + (s.rng.Float64()-0.5)*variationRange*0.2)

	return data
}

// ConfidenceJitter returns the rule-based recommendation's confidence,
// 75 + U[0, 20).
func (s *Synthesizer) ConfidenceJitter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 75 + s.rng.Intn(20)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
