package service

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andresilva/stocksight/internal/domain/models"
	"github.com/andresilva/stocksight/internal/logger"
	"github.com/andresilva/stocksight/internal/marketdata"
	"github.com/andresilva/stocksight/internal/mockdata"
)

// QuoteService turns a raw symbol lookup into a fully defaulted quote and
// chart series. It never fails: any provider problem is absorbed and
// replaced with synthesized data, so callers always get renderable output.
type QuoteService interface {
	GetStockData(ctx context.Context, symbol string) (models.Quote, []models.ChartPoint)
}

type quoteService struct {
	provider marketdata.Provider
	synth    *mockdata.Synthesizer
	now      func() time.Time
}

// NewQuoteService builds a QuoteService over the given provider and
// fallback synthesizer.
func NewQuoteService(provider marketdata.Provider, synth *mockdata.Synthesizer) QuoteService {
	return &quoteService{provider: provider, synth: synth, now: time.Now}
}

// GetStockData fetches the current quote and daily series for symbol,
// normalizes both, and applies the failover policy:
//
//   - quote fetch failed (rate limit, provider error, no quote, transport)
//     → fully synthesized quote and chart
//   - quote usable but series failed → live quote, synthesized chart
//     anchored at the live price
//   - both usable → live quote, chronological 30-bar chart with the newest
//     point patched to the live price
//
// Both provider calls run concurrently; each is attempted exactly once.
func (s *quoteService) GetStockData(ctx context.Context, symbol string) (models.Quote, []models.ChartPoint) {
	var (
		raw       *marketdata.GlobalQuote
		series    marketdata.DailySeries
		seriesErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raw, err = s.provider.FetchQuote(gctx, symbol)
		return err
	})
	g.Go(func() error {
		// A failed series never dooms the lookup; the error is kept aside
		// and answered with a synthesized chart.
		series, seriesErr = s.provider.FetchDailySeries(gctx, symbol)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.L().Warn().Err(err).Str("symbol", symbol).Msg("quote unavailable, substituting mock data")
		return s.synth.Quote(symbol)
	}

	quote := s.normalizeQuote(symbol, raw)

	var chart []models.ChartPoint
	if seriesErr != nil {
		logger.L().Warn().Err(seriesErr).Str("symbol", symbol).Msg("time series unavailable, synthesizing chart")
		chart = s.synth.Chart(quote.Price)
	} else {
		chart = s.buildChart(series, quote.Price)
		if len(chart) == 0 {
			chart = s.synth.Chart(quote.Price)
		}
	}

	return quote, chart
}

// normalizeQuote converts the provider's all-string payload into the
// canonical quote, substituting 0 for anything unparsable.
func (s *quoteService) normalizeQuote(symbol string, raw *marketdata.GlobalQuote) models.Quote {
	sym := raw.Symbol
	if sym == "" {
		sym = symbol
	}

	return models.Quote{
		Symbol: sym,
		// GLOBAL_QUOTE carries no company name; the symbol stands in.
		Name:          sym,
		Price:         safeFloat(raw.Price, 0),
		Change:        safeFloat(raw.Change, 0),
		ChangePercent: safeFloat(strings.TrimSuffix(raw.ChangePercent, "%"), 0),
		Volume:        safeInt(raw.Volume, 0),
		High:          safeFloat(raw.High, 0),
		Low:           safeFloat(raw.Low, 0),
		Open:          safeFloat(raw.Open, 0),
		PreviousClose: safeFloat(raw.PreviousClose, 0),
	}
}

// buildChart maps the most recent 30 daily bars into chronological chart
// points, then patches the newest point so the chart endpoint always equals
// the headline price: overwritten in place when it is already today's bar,
// appended otherwise.
func (s *quoteService) buildChart(series marketdata.DailySeries, price float64) []models.ChartPoint {
	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	// ISO dates sort lexicographically; newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > mockdata.ChartDays {
		dates = dates[:mockdata.ChartDays]
	}

	chart := make([]models.ChartPoint, 0, len(dates)+1)
	for _, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			logger.L().Debug().Str("date", d).Msg("skipping unparsable series date")
			continue
		}
		chart = append(chart, models.ChartPoint{
			Date:  day.Format(mockdata.DateLabel),
			Price: safeFloat(series[d].Close, 0),
		})
	}
	if len(chart) == 0 {
		return nil
	}

	// Newest-first so far; flip to chronological ascending.
	for i, j := 0, len(chart)-1; i < j; i, j = i+1, j-1 {
		chart[i], chart[j] = chart[j], chart[i]
	}

	todayLabel := s.now().Format(mockdata.DateLabel)
	if chart[len(chart)-1].Date == todayLabel {
		chart[len(chart)-1].Price = price
	} else {
		chart = append(chart, models.ChartPoint{Date: todayLabel, Price: price})
	}

	return chart
}

// safeFloat parses v, substituting def for anything unparsable or
// non-finite. Guarantees the canonical quote never carries NaN or Inf.
func safeFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// safeInt parses v as a base-10 integer, substituting def on failure.
func safeInt(v string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return def
	}
	return n
}
