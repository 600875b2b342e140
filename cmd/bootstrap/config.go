package bootstrap

import (
	"log/slog"
	"os"
	"path/filepath"

	"meter-reading-api/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// LoadEnvFiles loads the first .env found in the working directory or its parents.
// Variables already set in the environment win. Containers usually have none.
func LoadEnvFiles() {
	candidates := []string{".env"}
	if workDir, err := os.Getwd(); err == nil {
		parentDir := filepath.Dir(workDir)
		candidates = append(candidates,
			filepath.Join(parentDir, ".env"),
			filepath.Join(filepath.Dir(parentDir), ".env"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("failed to load env file", "path", path, "error", err)
			continue
		}
		absPath, _ := filepath.Abs(path)
		slog.Info("loaded environment file", "path", absPath)
		return
	}
}
