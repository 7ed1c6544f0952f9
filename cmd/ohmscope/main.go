// ohmscope - resistor color band reader service.
//
// Accepts a resistor photo over HTTP, delegates band detection to Gemini
// (structured output first, plain REST as fallback), and computes the
// resistance value from the detected bands.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ohmscope/ohmscope/internal/config"
	"github.com/ohmscope/ohmscope/internal/log"
	"github.com/ohmscope/ohmscope/internal/metrics"
	"github.com/ohmscope/ohmscope/pkg/decoder"
	"github.com/ohmscope/ohmscope/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log.Init(cfg.LogLevel)
	logger := log.With("component", "main")

	if cfg.GoogleAPIKey == "" {
		fmt.Fprintln(os.Stderr, "Error: GOOGLE_API_KEY (or OHMSCOPE_GOOGLE_API_KEY) is required")
		fmt.Fprintln(os.Stderr, "Get one at: https://aistudio.google.com/apikey")
		os.Exit(1)
	}

	opts := []decoder.Option{
		decoder.WithAPIKey(cfg.GoogleAPIKey),
		decoder.WithTimeout(time.Duration(cfg.RequestTimeoutMS) * time.Millisecond),
		decoder.WithTemperature(cfg.Temperature),
		decoder.WithLogger(log.L()),
	}
	if len(cfg.Models) > 0 {
		opts = append(opts, decoder.WithModels(cfg.Models...))
	}

	primary, err := decoder.NewGemini(opts...)
	if err != nil {
		logger.Error("create structured provider", "error", err)
		os.Exit(1)
	}
	fallback, err := decoder.NewREST(opts...)
	if err != nil {
		logger.Error("create fallback provider", "error", err)
		os.Exit(1)
	}

	chain, err := decoder.NewChainWithLogger(log.L(), primary, fallback)
	if err != nil {
		logger.Error("create decoder chain", "error", err)
		os.Exit(1)
	}
	defer chain.Close()

	srv := web.New(cfg, chain, metrics.New(), log.L())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}
