package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/andresilva/stocksight/internal/domain/models"
	"github.com/andresilva/stocksight/internal/mockdata"
)

type stubCompleter struct {
	response string
	err      error

	gotSystem string
	gotUser   string
}

func (s *stubCompleter) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	return s.response, s.err
}

func sampleQuote() models.Quote {
	return models.Quote{
		Symbol:        "AAPL",
		Price:         189.84,
		Change:        1.35,
		ChangePercent: 0.72,
		Volume:        52164800,
		High:          190.41,
		Low:           187.52,
		Open:          188.20,
		PreviousClose: 188.49,
	}
}

func TestAnalyze_NoCompleterUsesRules(t *testing.T) {
	svc := NewRecommendationService(nil, mockdata.New(rand.New(rand.NewSource(1))))

	rec := svc.Analyze(context.Background(), "AAPL", models.Quote{Change: 1, ChangePercent: 3})
	if rec.Action != models.ActionBuy {
		t.Fatalf("rule-based action %v, want BUY", rec.Action)
	}
	if len(rec.RiskFactors) != 3 {
		t.Fatalf("expected the fixed rule-based risk factors, got %v", rec.RiskFactors)
	}
}

func TestAnalyze_CompleterErrorFallsBack(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	svc := NewRecommendationService(stub, mockdata.New(rand.New(rand.NewSource(2))))

	rec := svc.Analyze(context.Background(), "AAPL", models.Quote{Change: -1, ChangePercent: -3})
	if rec.Action != models.ActionSell {
		t.Fatalf("fallback action %v, want SELL", rec.Action)
	}
}

func TestAnalyze_ParsesModelResponse(t *testing.T) {
	stub := &stubCompleter{
		response: "```json\n{\"action\":\"SELL\",\"confidence\":91,\"analysis\":\"Stretched valuation.\"," +
			"\"keyPoints\":[\"P/E at decade high\"],\"riskLevel\":\"High\",\"riskFactors\":[\"Multiple compression\"]}\n```",
	}
	svc := NewRecommendationService(stub, mockdata.New(rand.New(rand.NewSource(3))))

	rec := svc.Analyze(context.Background(), "AAPL", sampleQuote())

	if rec.Action != models.ActionSell || rec.Confidence != 91 {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	if stub.gotSystem != systemPrompt {
		t.Fatalf("system prompt not forwarded")
	}
}

func TestBuildPrompt_Formatting(t *testing.T) {
	prompt := buildPrompt("AAPL", sampleQuote())

	for _, want := range []string{
		"Stock Symbol: AAPL",
		"Current Price: $189.84",
		"Change: +1.35 (+0.72%)",
		"Volume: 52,164,800",
		"High: $190.41",
		"Low: $187.52",
		"Open: $188.20",
		"Previous Close: $188.49",
		`"action": "BUY|SELL|HOLD"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_NegativeChangeKeepsSign(t *testing.T) {
	q := sampleQuote()
	q.Change = -2.5
	q.ChangePercent = -1.3

	prompt := buildPrompt("AAPL", q)
	if !strings.Contains(prompt, "Change: -2.50 (-1.30%)") {
		t.Fatalf("negative change misformatted:\n%s", prompt)
	}
}

func TestBuildPrompt_ZeroQuote(t *testing.T) {
	prompt := buildPrompt("GHOST", models.Quote{})
	if !strings.Contains(prompt, "Current Price: $0.00") {
		t.Fatalf("zero quote should format as $0.00:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Volume: 0") {
		t.Fatalf("zero volume should format as 0:\n%s", prompt)
	}
}
