package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"uniguide/internal/auth"
	collegehandler "uniguide/internal/college/handler"
	collegeservice "uniguide/internal/college/service"
	collegestore "uniguide/internal/college/store"
	"uniguide/internal/platform/config"
	"uniguide/internal/platform/httpserver"
	"uniguide/internal/platform/logger"
	"uniguide/internal/platform/metrics"
	"uniguide/internal/platform/redis"
	fsclient "uniguide/internal/storage/firestore"
	studenthandler "uniguide/internal/student/handler"
	studentservice "uniguide/internal/student/service"
	studentstore "uniguide/internal/student/store"
	httptransport "uniguide/internal/transport/http"
)

// main wires dependencies explicitly and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.Load()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	fs, err := fsclient.NewClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
	if err != nil {
		log.Error("firestore client init failed", "error", err)
		os.Exit(1)
	}
	defer fs.Close()

	students := studentservice.New(studentstore.NewFirestoreStore(fs), log, m)
	colleges := collegeservice.New(collegestore.NewFirestoreStore(fs), log, m)

	cache, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Warn("summary cache disabled", "error", err)
	}
	if cache != nil {
		colleges.WithCache(cache, cfg.SummaryCacheTTL)
		defer cache.Close()
	}

	router := httptransport.NewRouter(cfg, log, m,
		studenthandler.New(students, log),
		collegehandler.New(colleges, log),
		auth.New(cfg, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting uniguide", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
