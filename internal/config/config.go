package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for the paper service.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"exampaper"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"10s"`
	MaxUploadBytes          int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	Translit Translit
}

// Translit configures the phonetic transliteration service boundary.
type Translit struct {
	BaseURL     string        `env:"TRANSLIT_BASE_URL" envDefault:"https://inputtools.google.com/request"`
	InputMethod string        `env:"TRANSLIT_INPUT_METHOD" envDefault:"ml-t-i0-und"`
	HTTPTimeout time.Duration `env:"TRANSLIT_HTTP_TIMEOUT" envDefault:"4s"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
