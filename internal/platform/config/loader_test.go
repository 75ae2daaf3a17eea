package config

import (
	"os"
	"path/filepath"
	"testing"

	"krishi-officer-go/internal/platform/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-ai-key")
	t.Setenv("WEATHER_API_KEY", "test-weather-key")

	result, err := NewLoader("").WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg := result.Config
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.AI.APIKey != "test-ai-key" {
		t.Errorf("AI key = %q, want env override", cfg.AI.APIKey)
	}
	if cfg.Weather.ForecastDays != 10 {
		t.Errorf("forecast days = %d, want 10", cfg.Weather.ForecastDays)
	}
	if cfg.Image.MaxFileSize != 5*1024*1024 {
		t.Errorf("image max size = %d, want 5MB", cfg.Image.MaxFileSize)
	}
}

func TestLoad_FileOverride(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-ai-key")
	t.Setenv("WEATHER_API_KEY", "test-weather-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9000\nai:\n  model_name: test-model\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := NewLoader(path).WithDotEnv(false).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if result.Config.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000 from file", result.Config.Server.Port)
	}
	if result.Config.AI.ModelName != "test-model" {
		t.Errorf("model = %q, want test-model", result.Config.AI.ModelName)
	}
	if result.Path != path {
		t.Errorf("result path = %q, want %q", result.Path, path)
	}
}

func TestLoad_MissingKeysFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AI_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")

	_, err := NewLoader("").WithDotEnv(false).Load()
	if err == nil {
		t.Fatal("Load() should fail without API keys")
	}
	if !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want config", err)
	}
}

func TestLoad_MissingWeatherKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "present")
	t.Setenv("WEATHER_API_KEY", "")

	_, err := NewLoader("").WithDotEnv(false).Load()
	if err == nil {
		t.Fatal("Load() should fail without weather API key")
	}
}
