package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/portal/internal/devserver"
	"github.com/dmitrijs2005/portal/internal/devserver/config"
	"github.com/dmitrijs2005/portal/internal/logging"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewSlogLogger(logging.NewSlog(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := devserver.NewApp(cfg, logger).Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
