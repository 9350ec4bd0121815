package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nilaydev/legalclause/internal/auth"
	"github.com/nilaydev/legalclause/internal/chat"
	"github.com/nilaydev/legalclause/internal/config"
	"github.com/nilaydev/legalclause/internal/extract"
	"github.com/nilaydev/legalclause/internal/httpapi"
	"github.com/nilaydev/legalclause/internal/learning"
	"github.com/nilaydev/legalclause/internal/news"
	"github.com/nilaydev/legalclause/internal/observability"
	"github.com/nilaydev/legalclause/internal/provider"
	"github.com/nilaydev/legalclause/internal/session"
	"github.com/nilaydev/legalclause/internal/store"
	"github.com/nilaydev/legalclause/internal/summarize"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx := context.Background()
	users, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("user store init failed: %v", err)
	}
	defer users.Close()

	chatRouter := provider.NewRouter(metrics, providerClients(cfg, cfg.GeminiChatModel)...)
	summaryRouter := provider.NewRouter(metrics, providerClients(cfg, cfg.GeminiSummaryModel)...)

	corpus := chat.NewFileCorpus(cfg.ConstitutionPath)
	chatPipeline := chat.NewPipeline(chatRouter, corpus)
	summarizer := summarize.New(summaryRouter)
	lessons := learning.NewService(chatRouter)
	feeds := news.NewFetcher(cfg.NewsFetchTimeout)
	extractor := extract.New(cfg.TesseractCmd, cfg.OCRLanguage)

	sessions := session.NewManager(cfg.SessionTTL)
	sessions.SetExpireHook(func(_ *session.Session) {
		metrics.SessionEvents.WithLabelValues("expired").Inc()
		metrics.ActiveSessions.Set(float64(sessions.ActiveCount()))
	})
	cookies := session.NewCookieCodec(cfg.SecretKey, cfg.SessionTTL)

	accounts := auth.NewService(users)

	api := httpapi.New(cfg, accounts, sessions, cookies, extractor, summarizer, chatPipeline, feeds, lessons, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	sessions.StartJanitor(runCtx, time.Minute)

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	runCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}

// providerClients builds the ordered backend list for one Gemini model.
// Gemini is primary, Groq the fallback; clients without a configured key are
// still listed so the router can report which backends were skipped.
func providerClients(cfg config.Config, geminiModel string) []provider.Client {
	clients := []provider.Client{
		provider.NewGemini(cfg.GeminiAPIKey, geminiModel, cfg.ProviderTimeout),
		provider.NewGroq(cfg.GroqAPIKey, cfg.GroqModel, cfg.ProviderTimeout),
	}
	if cfg.GeminiAPIKey == "" && cfg.GroqAPIKey == "" {
		log.Printf("no AI provider key configured; generation endpoints will return a configuration notice")
	}
	return clients
}
