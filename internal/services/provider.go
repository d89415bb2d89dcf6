package services

import (
	"github.com/KirkDiggler/duel/internal/dice"
	"github.com/KirkDiggler/duel/internal/events"
	matchService "github.com/KirkDiggler/duel/internal/services/match"
	"github.com/KirkDiggler/duel/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	MatchService matchService.Service
	EventBus     *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Roller        dice.Roller
	EventBus      *events.Bus
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Fall back to a clock seeded roller
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	return &Provider{
		MatchService: matchService.NewService(&matchService.ServiceConfig{
			Roller:        roller,
			EventBus:      bus,
			UUIDGenerator: cfg.UUIDGenerator,
		}),
		EventBus: bus,
	}
}
