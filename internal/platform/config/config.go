package config

import (
	"time"

	"krishi-officer-go/internal/platform/logging"
)

// Config is the root configuration for the advisory server.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	Log     logging.Config `yaml:"log"`
	Web     WebConfig      `yaml:"web"`
	AI      AIConfig       `yaml:"ai"`
	Weather WeatherConfig  `yaml:"weather"`
	Image   ImageConfig    `yaml:"image"`
	Data    DataConfig     `yaml:"data"`
}

type ServerConfig struct {
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
}

type WebConfig struct {
	StaticDir string `yaml:"static_dir"`
	// MaxBodySize caps inbound request bodies; oversized uploads get HTTP 413.
	MaxBodySize int64 `yaml:"max_body_size"`
}

// AIConfig points at an OpenAI-compatible chat completion endpoint. The
// Gemini OpenAI-compatibility endpoint works here as well as OpenAI itself.
type AIConfig struct {
	ModelName   string  `yaml:"model_name"`
	BaseURL     string  `yaml:"base_url,omitempty"`
	APIKey      string  `yaml:"api_key,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	TopP        float64 `yaml:"top_p,omitempty"`
}

type WeatherConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key,omitempty"`
	Timeout      time.Duration `yaml:"timeout"`
	ForecastDays int           `yaml:"forecast_days"`
}

// DataConfig locates the read-only reference datasets.
type DataConfig struct {
	CropPriceFile string `yaml:"crop_price_file"`
	SchemesFile   string `yaml:"schemes_file"`
}

type ImageConfig struct {
	MaxFileSize    int64    `yaml:"max_file_size"`
	AllowedFormats []string `yaml:"allowed_formats"`
	MaxWidth       int      `yaml:"max_width"`
	MaxHeight      int      `yaml:"max_height"`
	MaxPixels      int64    `yaml:"max_pixels"`
	EnableDeepScan bool     `yaml:"enable_deep_scan"`
}

// DefaultConfig returns the baseline configuration before file and
// environment overrides are applied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			IP:   "0.0.0.0",
			Port: 8080,
		},
		Log: logging.Config{
			Level:    "info",
			Dir:      "logs",
			Filename: "server.log",
		},
		Web: WebConfig{
			StaticDir:   "./web",
			MaxBodySize: 16 << 20,
		},
		AI: AIConfig{
			ModelName:   "gemini-2.5-pro",
			BaseURL:     "https://generativelanguage.googleapis.com/v1beta/openai/",
			Temperature: 0.7,
			MaxTokens:   2048,
			TopP:        1.0,
		},
		Weather: WeatherConfig{
			BaseURL:      "http://api.weatherapi.com/v1",
			Timeout:      10 * time.Second,
			ForecastDays: 10,
		},
		Image: ImageConfig{
			MaxFileSize:    5 * 1024 * 1024,
			AllowedFormats: []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"},
			MaxWidth:       8192,
			MaxHeight:      8192,
			MaxPixels:      50_000_000,
			EnableDeepScan: false,
		},
		Data: DataConfig{
			CropPriceFile: "data/cropprice.csv",
			SchemesFile:   "data/schemes.json",
		},
	}
}
