package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akmonengine/boxcollide/config"
	"github.com/akmonengine/boxcollide/internal/app"
	"github.com/akmonengine/boxcollide/internal/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, built-in defaults when empty")
	logLevel := flag.String("log-level", "", "overrides log.level from the config (debug, info, warn, error)")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "boxcollide: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logLevel string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	// the terminal belongs to the renderer, logs go to a file
	logger, err := log.New(log.Options{
		Level:       level,
		OutputPaths: []string{cfg.Log.Output},
		Encoding:    cfg.Log.Encoding,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}

	a, err := app.New(cfg, screen, logger)
	if err != nil {
		logger.Error("startup failed", log.Err(err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Error("run failed", log.Err(err))
		return err
	}

	return nil
}
