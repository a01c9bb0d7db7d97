package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the market-data provider, and the LLM provider.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	ALPHA_VANTAGE_API_KEY=demo
//	ALPHA_VANTAGE_BASE_URL=https://www.alphavantage.co
//	OPENAI_API_KEY=sk-...
//	OPENAI_BASE_URL=https://api.openai.com/v1
//	OPENAI_MODEL=gpt-4
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	MarketData MarketDataConfig // Alpha Vantage connection settings
	OpenAI     OpenAIConfig     // LLM provider settings (optional)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// MarketDataConfig defines how to reach the market-data provider.
//
// The API key defaults to the provider's literal "demo" key, which serves a
// restricted symbol set; quote lookups degrade to synthesized data when the
// provider rejects or rate-limits the request, so an unconfigured key never
// breaks the service.
type MarketDataConfig struct {
	APIKey  string
	BaseURL string
}

// OpenAIConfig defines the LLM provider connection. APIKey is optional:
// when empty, recommendations come from the rule-based engine instead.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields that have a sensible one.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("ALPHA_VANTAGE_API_KEY", "demo")
	viper.SetDefault("ALPHA_VANTAGE_BASE_URL", "https://www.alphavantage.co")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		MarketData: MarketDataConfig{
			APIKey:  viper.GetString("ALPHA_VANTAGE_API_KEY"),
			BaseURL: viper.GetString("ALPHA_VANTAGE_BASE_URL"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			BaseURL: viper.GetString("OPENAI_BASE_URL"),
			Model:   viper.GetString("OPENAI_MODEL"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing.
//
// OPENAI_API_KEY is deliberately not validated: its absence is a supported
// degraded mode, not a misconfiguration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.MarketData.APIKey == "" {
		missing = append(missing, "ALPHA_VANTAGE_API_KEY")
	}
	if AppConfig.MarketData.BaseURL == "" {
		missing = append(missing, "ALPHA_VANTAGE_BASE_URL")
	}
	if AppConfig.OpenAI.BaseURL == "" {
		missing = append(missing, "OPENAI_BASE_URL")
	}
	if AppConfig.OpenAI.Model == "" {
		missing = append(missing, "OPENAI_MODEL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
