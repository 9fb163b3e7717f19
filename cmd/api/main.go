package main

import (
	"context"
	"net/http"
	"time"

	"bookbarter/internal/config"
	"bookbarter/internal/contact"
	"bookbarter/internal/httpx"
	"bookbarter/internal/listing"
	"bookbarter/internal/logging"
	"bookbarter/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.IsProduction())

	catalogStore, storePinger := mustOpenStore(cfg.Store)

	listingService := listing.NewService(catalogStore)

	router := newRouter(listingService, storePinger)

	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Str("store", cfg.Store.Backend).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(listingService *listing.Service, p pinger) *http.ServeMux {
	listingHandler := listing.NewHTTPHandler(listingService)
	contactHandler := contact.NewHTTPHandler(listingService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				http.Error(w, "store not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", listingHandler.List)
	router.HandleFunc("POST /books", listingHandler.Create)
	router.HandleFunc("GET /books/{id}", listingHandler.Get)
	router.HandleFunc("GET /books/{id}/contact", contactHandler.Contact)
	router.HandleFunc("GET /meta", listingHandler.Meta)

	return router
}

// mustOpenStore builds the configured catalog store. Only the Redis
// backend has a connection to probe, so the pinger may be nil.
func mustOpenStore(cfg config.StoreConfig) (listing.Store, pinger) {
	switch cfg.Backend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid STORE_REDIS_URL")
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Fatal().Err(err).Msg("cannot ping redis")
		}
		s := store.NewRedis(client, cfg.RedisKey)
		return s, s
	case config.BackendMemory:
		return store.NewMemory(), nil
	default:
		return store.NewFile(cfg.FilePath), nil
	}
}
