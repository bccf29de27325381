package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"framelight/api/internal/app"
	"framelight/api/internal/authpw"
	"framelight/api/internal/config"
	"framelight/api/internal/email"
	"framelight/api/internal/filehost"
	"framelight/api/internal/persist"
	"framelight/api/internal/search"
	"framelight/api/internal/session"
	"framelight/api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var substrate persist.Substrate
	switch cfg.Substrate {
	case "postgres":
		pg, err := persist.NewPostgresSubstrate(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connection failed: %v", err)
		}
		substrate = pg
	case "memory":
		log.Printf("WARNING: memory substrate selected, data will not survive restarts")
		substrate = persist.NewMemorySubstrate()
	default:
		rd, err := persist.NewRedisSubstrate(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		substrate = rd
	}

	adapter := persist.NewAdapter(substrate, cfg.Namespace)
	defer adapter.Close()

	dataStore := store.Load(ctx, adapter)

	sessions, err := session.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	defer sessions.Close()

	var meiliClient *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meiliClient = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey)
		defer meiliClient.Close()
	}
	searchService := search.NewService(meiliClient, search.NewStoreScan(dataStore))

	var files *filehost.Resolver
	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		files, err = filehost.New(filehost.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			log.Fatalf("file host connection failed: %v", err)
		}
	}

	mail := email.NewService(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})

	gate := authpw.NewService(dataStore, cfg.AllowSeedLogins)
	if cfg.AllowSeedLogins {
		log.Printf("WARNING: seed logins enabled, accounts without credentials can sign in")
	}

	service := app.New(cfg, dataStore, gate, sessions, searchService, files, mail)
	service.SetPinger(adapter)

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Framelight API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
