package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"worldcat/internal/bib"
	"worldcat/internal/config"
	"worldcat/internal/httpx"
	"worldcat/internal/oclc"
	"worldcat/internal/platform/logger"
	"worldcat/internal/platform/worldcat"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if cfg.WorldCat.AccessToken == "" {
		log.Warn("WORLDCAT_ACCESS_TOKEN is empty; WorldCat calls will be unauthenticated")
	}

	client := worldcat.NewClient(cfg.WorldCat)
	handler := newRouter(cfg, log, client)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.WorldCat.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting server", "addr", cfg.Addr, "worldcat", cfg.WorldCat.BaseURL)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg config.Config, log *slog.Logger, client bib.WorldCatClient) http.Handler {
	oclcHandler := oclc.NewHTTPHandler()
	bibHandler := bib.NewHTTPHandler(bib.NewService(client, log))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /v1/oclc/numbers/{oclcNumber}", oclcHandler.VerifyOne)
	router.HandleFunc("/v1/oclc/numbers", oclcHandler.VerifyMany)

	router.HandleFunc("GET /v1/bibs/current", bibHandler.CurrentNumbers)
	router.HandleFunc("GET /v1/bibs/{oclcNumber}", bibHandler.GetBib)
	router.HandleFunc("POST /v1/holdings/{oclcNumber}", bibHandler.SetHolding)

	limiter := httpx.NewRateLimitMiddleware(20, 40)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
