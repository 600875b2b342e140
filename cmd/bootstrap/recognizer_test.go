//go:build unit

package bootstrap_test

import (
	"log/slog"
	"testing"

	"meter-reading-api/cmd/bootstrap"
	"meter-reading-api/internal/infra/recognizer"
	"meter-reading-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecognizer(t *testing.T) {
	logger := slog.Default()

	t.Run("http provider", func(t *testing.T) {
		cfg := config.NewTestConfig()
		r, err := bootstrap.NewRecognizer(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &recognizer.HTTPRecognizer{}, r)
	})

	t.Run("gemini provider", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Recognizer.Provider = config.ProviderGemini
		cfg.Recognizer.GeminiAPIKey = "key"
		r, err := bootstrap.NewRecognizer(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &recognizer.GeminiRecognizer{}, r)
	})

	t.Run("gemini provider without key", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Recognizer.Provider = config.ProviderGemini
		r, err := bootstrap.NewRecognizer(cfg, logger)
		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Recognizer.Provider = "tesseract"
		_, err := bootstrap.NewRecognizer(cfg, logger)
		require.Error(t, err)
	})
}
