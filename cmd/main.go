package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/runsha/sketchfolio/cmd/sketchfolio"
	"github.com/runsha/sketchfolio/logging"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	slog.SetDefault(logging.NewLogger(os.Stderr, false))

	sketchfolio.Execute()
}
