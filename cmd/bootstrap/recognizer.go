package bootstrap

import (
	"log/slog"

	"meter-reading-api/internal/infra/recognizer"
	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var RecognizerModule = fx.Module("recognizer",
	fx.Provide(
		NewRecognizer,
	),
)

func NewRecognizer(cfg config.Config, logger *slog.Logger) (commands.Recognizer, error) {
	switch cfg.Recognizer.Provider {
	case config.ProviderHTTP:
		logger.Info("using HTTP recognition service", "url", cfg.Recognizer.URL, "timeout", cfg.Recognizer.Timeout)
		return recognizer.NewHTTPRecognizer(cfg.Recognizer, logger), nil
	case config.ProviderGemini:
		logger.Info("using Gemini recognition service", "model", cfg.Recognizer.GeminiModel)
		r, err := recognizer.NewGeminiRecognizer(cfg.Recognizer, logger)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, errs.Newf("unknown recognizer provider %q", cfg.Recognizer.Provider)
	}
}
