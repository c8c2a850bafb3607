// Command footballctl browses football-data.org from the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-center/internal/app"
	"github.com/riskibarqy/football-center/internal/config"
	"github.com/riskibarqy/football-center/internal/interfaces/terminal"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logs go to stderr so they never interleave with rendered pages.
	logger := logging.New(cfg.LogLevel, zapcore.Lock(os.Stderr)).With("app", "footballctl")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Debug("footballctl starting", "mode", cfg.FootballDataMode, "base_url", cfg.FootballDataURL())

	browser := terminal.NewBrowser(app.NewScreens(cfg, logger), os.Stdin, os.Stdout, logger)
	if err := browser.Run(ctx); err != nil {
		logger.Error("browser stopped", "error", err)
		os.Exit(1)
	}
}
