package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/dnd-damage-application/internal/actions"
	"github.com/KirkDiggler/dnd-damage-application/internal/config"
	"github.com/KirkDiggler/dnd-damage-application/internal/domain/events"
	"github.com/KirkDiggler/dnd-damage-application/internal/host"
	"github.com/KirkDiggler/dnd-damage-application/internal/repositories/resolutions"
	"github.com/KirkDiggler/dnd-damage-application/internal/services/application"
	"github.com/KirkDiggler/dnd-damage-application/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ApplicationService application.Service
	EventBus           *events.EventBus
	Actions            *actions.Mux
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Host                 *host.Host
	ResolutionRepository resolutions.Repository
	Damage               config.DamageConfig
	UUIDGenerator        uuid.Generator // Optional, random ids when nil
	Logger               *zap.Logger
}

// NewProvider creates a new service provider with all services initialized.
// It fails when an action router is missing a handler.
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		panic("config is required")
	}

	// Use in-memory repository if none provided
	repo := cfg.ResolutionRepository
	if repo == nil {
		repo = resolutions.NewInMemoryRepository()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	policy, err := cfg.Damage.CantripSavePolicy()
	if err != nil {
		return nil, err
	}

	bus := events.NewEventBus()
	svc := application.NewService(&application.ServiceConfig{
		Host:          cfg.Host,
		Repository:    repo,
		EventBus:      bus,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        logger.Named("application"),
		CantripPolicy: policy,
		Colors:        cfg.Damage.Colors,
	})

	mux, err := actions.NewMux(
		actions.NewDamageRouter(svc, logger.Named("actions")),
		actions.NewSessionRouter(svc, logger.Named("actions")),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		ApplicationService: svc,
		EventBus:           bus,
		Actions:            mux,
	}, nil
}
