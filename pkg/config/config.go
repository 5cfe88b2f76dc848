package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"storyboard/pkg/inference"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`

	GeminiAPIKey string `env:"GEMINI_API_KEY" validate:"required"`
	Model        string `env:"GEMINI_MODEL"`

	MaxOutputTokens int32    `env:"GEMINI_MAX_OUTPUT_TOKENS" validate:"gte=0"`
	Temperature     *float32 `env:"GEMINI_TEMPERATURE" validate:"omitempty,gte=0,lte=2"`

	// GenerationTimeout bounds the single model call; zero disables it.
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"3m" validate:"gte=0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// StateFile persists the session between restarts when set.
	StateFile string `env:"STATE_FILE"`
}

// Load reads the environment. The API key may also come from API_KEY.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = inference.DefaultGeminiModel
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string { return ":" + c.Port }
