package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/savioruz/bookease/config"
)

func main() {
	cfg, err := config.NewClient()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	c, err := newCLI(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatalf("Session error: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
