package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/duel/internal/config"
	"github.com/KirkDiggler/duel/internal/dice"
	"github.com/KirkDiggler/duel/internal/handlers/text"
	"github.com/KirkDiggler/duel/internal/services"
	"github.com/KirkDiggler/duel/internal/services/match"
	"github.com/KirkDiggler/duel/internal/uuid"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("duel", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log.SetOutput(io.Discard)
	if cfg.Verbose {
		log.SetOutput(stderr)
	}

	providerConfig := &services.ProviderConfig{}
	if cfg.Seed != 0 {
		log.Printf("Using seed %d", cfg.Seed)
		providerConfig.Roller = dice.NewSeededRoller(cfg.Seed)
		providerConfig.UUIDGenerator = uuid.NewSeededGenerator(cfg.Seed)
	}

	provider := services.NewProvider(providerConfig)

	text.NewRenderer(&text.RendererConfig{
		Output:   stdout,
		Language: cfg.Language,
		Rules:    cfg.Rules,
	}).Attach(provider.EventBus)

	if _, err := provider.MatchService.Run(ctx, &match.RunInput{
		MaxHP: cfg.MaxHP,
		Rules: cfg.Rules,
	}); err != nil {
		fmt.Fprintf(stderr, "match failed: %v\n", err)
		return exitError
	}

	return exitOK
}
