package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/turbosim/domain-config-backend/config"
	"github.com/turbosim/domain-config-backend/internal/bootstrap"
	cronjob "github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/cron"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/repository"
	"github.com/turbosim/domain-config-backend/internal/simulation_domain_configuration/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:      cfg.Database.DSN,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	domainRepo := repository.NewDomainRepository(db)
	if err := domainRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	cacheRepo := repository.NewCacheRepository(rdb)
	domainService := service.NewDomainService(domainRepo, cacheRepo)

	cronjob.NewScheduler(domainService).Start()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "domain-config-backend",
		Version:       cfg.App.Version,
		APIKey:        cfg.Server.APIKey,
		DomainService: domainService,
		DB:            db,
		Redis:         rdb,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
