package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/metinatakli/cinex-admin/internal/app"
)

func main() {
	// a missing .env is fine, the flags fall back to the process environment
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		slog.Error("application terminated", "error", err)
		os.Exit(1)
	}
}
