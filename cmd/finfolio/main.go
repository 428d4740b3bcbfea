package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/config"
	"github.com/heelin/finfolio/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	session := api.NewSession()

	svc := api.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		session,
		logger,
	)

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		logger.Warn("falling back to local timezone", zap.Error(err))
		loc = time.Local
	}

	app := tui.NewApp(svc, session, tui.Options{
		CurrencySymbol: cfg.UI.CurrencySymbol,
		Now:            func() time.Time { return time.Now().In(loc) },
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to a file. The TUI owns the terminal, so stderr is
// not an option while the program runs.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, err
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{lc.Path}
	zc.ErrorOutputPaths = []string{lc.Path}
	return zc.Build()
}
