package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fpsdemo/internal/config"
	"fpsdemo/internal/game"
	"fpsdemo/internal/logger"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	path := config.Path()
	cfg, err := config.Load(path)
	missing := errors.Is(err, fs.ErrNotExist)
	if missing {
		cfg = config.Default()
	} else if err != nil {
		slog.Error("load config", "path", path, "err", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, "session", uuid.NewString()[:8])

	if missing {
		slog.Info("no config file, using defaults", "path", path)
	} else {
		slog.Info("config loaded", "path", path)
	}

	if err := game.New(cfg, path).Run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
