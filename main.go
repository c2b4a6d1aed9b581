package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-desktop/internal"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/config"
	"github.com/rocketscienceinc/tictactoe-desktop/transport/tui"
)

var flagConfig = flag.String("config", "", "Path to config.yml")

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()

	conf := config.MustLoad(config.Path(*flagConfig))
	logger, closeLog := initLogger(conf)
	defer closeLog()

	score, err := app.RunApp(logger, conf)
	if err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}

	if err = tui.Summary(os.Stdout, score); err != nil {
		logger.Error("could not print summary", "error", err)
	}
}

// initialize logger. The terminal belongs to the UI, so logs go to a file.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	var w io.Writer = io.Discard
	closeLog := func() {}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled, could not open %s: %v\n", conf.LogFile, err)
	} else {
		w = file
		closeLog = func() { _ = file.Close() }
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), closeLog
}
