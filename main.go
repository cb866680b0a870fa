package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Auto-load ./.env if present before reading vars.
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}

	// Support a lightweight migrate command: `./fintrack migrate`
	// openDB already ran AutoMigrate; this just exits afterwards.
	// Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		fmt.Println("migration completed")
		return
	}

	auth := NewAuthService(db, cfg)
	ledger := NewLedgerService(db)

	r := gin.Default()
	setupRoutes(r, auth, ledger)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
