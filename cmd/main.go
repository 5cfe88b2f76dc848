package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	clog "github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"storyboard/pkg/config"
	"storyboard/pkg/inference"
	"storyboard/pkg/server"
	"storyboard/pkg/storyboard"
)

var echoLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
}

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level, err := clog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	clog.SetLevel(level)

	gemini, err := inference.NewGeminiInferencer(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		log.Fatal(err)
	}
	gemini.MaxOutputTokens = cfg.MaxOutputTokens
	gemini.Temperature = cfg.Temperature
	clog.Info("using gemini", "model", gemini.Model())

	srv := server.NewServer(ctx, storyboard.NewGenerator(gemini))
	srv.Timeout = cfg.GenerationTimeout
	srv.Echo.Logger.SetLevel(echoLevels[cfg.LogLevel])

	if err := srv.LoadState(cfg.StateFile); err != nil {
		log.Warnf("Failed to load %s: %v", cfg.StateFile, err)
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		done()
	}
	<-finishedShutDown
}
