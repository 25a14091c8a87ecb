package main

import (
	"log/slog"

	"gcmatome/cmd/gcmatome-cli/commands"
	"gcmatome/internal/components/serviceutil"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, GCMATOME_* can come from the real environment
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env loaded", "err", err.Error())
	}
	commands.ExecuteContext(serviceutil.SignalContext())
}
