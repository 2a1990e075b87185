package main

import (
	"fmt"
	"log"
	"net/http"

	"prompt-library/internal/config"
	"prompt-library/internal/db"
	"prompt-library/internal/library"
	"prompt-library/internal/server"

	"golang.org/x/text/language"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if cfg.APIKey == "" {
		log.Fatal("API_KEY is not set; the server cannot start")
	}

	var slot library.Slot
	conn, err := db.Open()
	if err != nil {
		log.Printf("running without durable storage: %v", err)
	} else {
		if err := db.ConfigurePool(conn, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns,
			cfg.DBConnMaxLifetimeSeconds, cfg.DBConnMaxIdleTimeSeconds); err != nil {
			log.Fatalf("failed to configure db pool: %v", err)
		}
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		slot = db.NewSlot(conn, cfg.SlotName)
	}

	store := library.NewStore(slot, language.Make(cfg.Locale))
	srv := server.New(store, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("prompt library server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
