package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("ALPHA_VANTAGE_API_KEY")
	_ = os.Unsetenv("ALPHA_VANTAGE_BASE_URL")
	_ = os.Unsetenv("OPENAI_API_KEY")
	_ = os.Unsetenv("OPENAI_BASE_URL")
	_ = os.Unsetenv("OPENAI_MODEL")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.MarketData.APIKey != "demo" {
		t.Fatalf("expected the literal demo credential, got %q", AppConfig.MarketData.APIKey)
	}
	if AppConfig.MarketData.BaseURL != "https://www.alphavantage.co" {
		t.Fatalf("unexpected market data base URL: %q", AppConfig.MarketData.BaseURL)
	}
	if AppConfig.OpenAI.APIKey != "" {
		t.Fatalf("LLM credential should default to empty, got %q", AppConfig.OpenAI.APIKey)
	}
	if AppConfig.OpenAI.BaseURL != "https://api.openai.com/v1" || AppConfig.OpenAI.Model != "gpt-4" {
		t.Fatalf("unexpected OpenAI defaults: %+v", AppConfig.OpenAI)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig()
		// to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
