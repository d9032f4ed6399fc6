package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/greenside-labs/greenside/app"
	"github.com/greenside-labs/greenside/config"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("error closing database connection: %v", err)
		}
	}()

	if err := application.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
