package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kvizgrad/internal/engine"
	"kvizgrad/internal/logging"
)

func main() {
	logging.InitFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := engine.Bootstrap(ctx, "kvizgrad.yml", os.Stdout)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
