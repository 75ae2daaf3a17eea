package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"krishi-officer-go/internal/platform/errors"
)

// Loader reads the YAML config file and applies environment overrides.
type Loader struct {
	path      string
	useDotEnv bool
}

// NewLoader creates a loader for the given config path. An empty path skips
// the file stage and relies on defaults plus environment variables.
func NewLoader(path string) *Loader {
	return &Loader{
		path:      path,
		useDotEnv: true,
	}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// Result captures the loaded configuration and its origin path.
type Result struct {
	Config *Config
	Path   string
}

// Load builds the effective configuration: defaults, then the YAML file,
// then .env/environment variables. Both external API keys are required.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		// A missing .env file is fine; the process environment still applies.
		_ = godotenv.Load()
	}

	cfg := DefaultConfig()

	path := l.path
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrap(errors.KindConfig, "config.load", "read config file", err)
			}
			path = ""
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrap(errors.KindConfig, "config.load", "parse config file", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("AI_MODEL_NAME"); v != "" {
		cfg.AI.ModelName = v
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
}

func validate(cfg *Config) error {
	if cfg.AI.APIKey == "" {
		return errors.New(errors.KindConfig, "config.validate",
			"AI API key is required (set GEMINI_API_KEY or AI_API_KEY)")
	}
	if cfg.Weather.APIKey == "" {
		return errors.New(errors.KindConfig, "config.validate",
			"weather API key is required (set WEATHER_API_KEY)")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New(errors.KindConfig, "config.validate", "server port out of range")
	}
	return nil
}
