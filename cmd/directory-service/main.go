package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentdir/directory/internal/api"
	"github.com/agentdir/directory/internal/config"
	"github.com/agentdir/directory/internal/model"
	"github.com/agentdir/directory/internal/platform/factory"
	"github.com/agentdir/directory/internal/platform/logger"
	"github.com/agentdir/directory/internal/seed"
)

func main() {
	// Optional store-driver flag override (memory | sqlite | postgres)
	storeDriver := flag.String("store-driver", "", "Override DIRECTORY_STORE_DRIVER")
	flag.Parse()

	log := logger.New("directory-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *storeDriver != "" {
		cfg.StoreDriver = *storeDriver
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid store-driver override")
		}
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Directory service starting…")

	ctx := context.Background()
	st, err := factory.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	if cfg.SeedDemoData {
		if _, err := seed.Load(log.WithContext(ctx), st); err != nil {
			// A previously seeded store is fine on restart.
			if !errors.Is(err, model.ErrConflict) {
				log.Fatal().Err(err).Msg("Demo seed failed")
			}
			log.Info().Msg("Demo catalog already present, skipping seed")
		}
	}

	router := api.NewRouter(st)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
