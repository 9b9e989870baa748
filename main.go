package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"

	"mentorhub-chat/auth"
	"mentorhub-chat/config"
	"mentorhub-chat/controllers"
	"mentorhub-chat/routes"
	"mentorhub-chat/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	controllers.TokenTTL = cfg.TokenTTL

	controllers.Store = openStore(cfg)
	defer func() {
		if err := controllers.Store.Close(); err != nil {
			slog.Error("error closing store", "err", err)
		}
	}()

	if err := store.SeedUsers(controllers.Store); err != nil {
		log.Fatalf("Failed to seed demo users: %v", err)
	}
	if err := store.SeedDashboard(controllers.Store); err != nil {
		log.Fatalf("Failed to seed dashboard: %v", err)
	}

	r := gin.Default()
	routes.ChatRouter(r)

	slog.Info("server starting", "port", cfg.Port, "tokenTTL", cfg.TokenTTL)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// openStore decides the persistence mode exactly once. Every read and
// write for the lifetime of the process goes through the store chosen
// here; the in-memory fallback keeps the system operable without a
// reachable database.
func openStore(cfg config.Config) store.Store {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, using in-memory store")
		return store.NewMemory()
	}

	pg, err := store.OpenPostgres(cfg.DatabaseURL)
	if err != nil {
		slog.Warn("database unreachable, falling back to in-memory store", "err", err)
		return store.NewMemory()
	}
	return pg
}
