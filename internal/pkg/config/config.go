package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that must differ between environments and have no safe fallback (API keys)
// - default: Values common across all environments (port, timeouts, endpoints, log format)
// -----------------------------------------------------------------------------

const (
	ProviderHTTP   = "http"
	ProviderGemini = "gemini"
)

type Config struct {
	Server     ServerConfig
	Image      ImageConfig
	Recognizer RecognizerConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type ImageConfig struct {
	BaseURL string `envconfig:"IMAGE_BASE_URL" default:"https://seu-servidor/imagens"`
}

type RecognizerConfig struct {
	Provider     string        `envconfig:"RECOGNIZER_PROVIDER" default:"http"`
	URL          string        `envconfig:"RECOGNIZER_URL" default:"https://api.gemini.com/v1/process_image"`
	Timeout      time.Duration `envconfig:"RECOGNIZER_TIMEOUT" default:"30s"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
}

type CORSConfig struct {
	AllowAllOrigins  bool          `envconfig:"CORS_ALLOW_ALL_ORIGINS" default:"true"`
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *RecognizerConfig) Validate() error {
	switch c.Provider {
	case ProviderHTTP:
		if c.URL == "" {
			return fmt.Errorf("RECOGNIZER_URL is required for provider %q", c.Provider)
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown RECOGNIZER_PROVIDER %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("RECOGNIZER_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Recognizer.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid recognizer config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Image: ImageConfig{
			BaseURL: "https://seu-servidor/imagens",
		},
		Recognizer: RecognizerConfig{
			Provider: ProviderHTTP,
			URL:      "http://localhost:18080/v1/process_image",
			Timeout:  5 * time.Second,
		},
		CORS: CORSConfig{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:   []string{"Content-Length"},
			MaxAge:          12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
