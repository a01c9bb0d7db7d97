package app

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/andresilva/stocksight/config"
	"github.com/andresilva/stocksight/internal/api"
	"github.com/andresilva/stocksight/internal/llm"
	"github.com/andresilva/stocksight/internal/logger"
	"github.com/andresilva/stocksight/internal/marketdata"
	"github.com/andresilva/stocksight/internal/mockdata"
	"github.com/andresilva/stocksight/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the Alpha Vantage client from configuration.
//   - Builds the LLM client when a credential is configured; otherwise the
//     recommendation service runs rule-based only.
//   - Wires the fallback synthesizer into both services.
//   - Configures the Gin router and health probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	provider := marketdata.NewClient(cfg.MarketData.APIKey, cfg.MarketData.BaseURL)

	var completer llm.Completer
	if cfg.OpenAI.APIKey != "" {
		completer = llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	} else {
		logger.L().Info().Msg("no LLM credential configured, recommendations are rule-based")
	}

	synth := mockdata.New(nil)

	quotes := service.NewQuoteService(provider, synth)
	advice := service.NewRecommendationService(completer, synth)

	handler := api.NewHandler(quotes, advice)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(func() error {
		if config.AppConfig.MarketData.BaseURL == "" {
			return errors.New("configuration not loaded")
		}
		return nil
	})
	healthHandler.Register(router)

	// No persistent resources to release; kept for symmetry with callers
	// that expect a cleanup hook.
	cleanup := func() {}

	return router, cleanup, nil
}
