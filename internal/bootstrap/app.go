package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emberworks/itemforge/internal/definition"
	"github.com/emberworks/itemforge/internal/durability"
	"github.com/emberworks/itemforge/internal/event"
	"github.com/emberworks/itemforge/internal/mechanic"
	"github.com/emberworks/itemforge/internal/metrics"
	"github.com/emberworks/itemforge/internal/pack"
)

// InitializeRegistry creates the mechanic registry and registers every
// built-in mechanic factory. Registration happens once, before any
// definitions are applied.
func InitializeRegistry() (*mechanic.Registry, error) {
	registry := mechanic.NewRegistry()

	factories := map[string]mechanic.Constructor{
		durability.TypeName: durability.NewFactory,
	}

	for name, constructor := range factories {
		if err := registry.Register(name, constructor); err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedRegisterFactory, name, err)
		}
		metrics.MechanicsRegistered.WithLabelValues(name).Inc()
	}

	slog.Info(LogMsgMechanicsRegistered, "types", registry.Types())
	return registry, nil
}

// InitializeEventSystem creates the in-memory event bus and the asset
// pack channel, and attaches the channel to pack-aware factories.
func InitializeEventSystem(registry *mechanic.Registry) (event.Bus, *pack.Channel, error) {
	eventBus := event.NewMemoryBus()
	channel := pack.NewChannel()

	factory, err := registry.Resolve(durability.TypeName)
	if err != nil {
		return nil, nil, err
	}
	durabilityFactory, ok := factory.(*durability.Factory)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %T", ErrMsgUnexpectedFactoryType, factory)
	}
	durabilityFactory.AttachPack(channel)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus, channel, nil
}

// LoadDefinitions loads, validates, and applies the item definitions
// file into a fresh Store. Definitions rejected during apply are logged
// by the store; a rejected definition does not fail startup.
func LoadDefinitions(ctx context.Context, path string, registry *mechanic.Registry, bus event.Bus) (*definition.Store, error) {
	loader := definition.NewLoader()

	cfg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDefinitions, err)
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDefinitions, err)
	}

	store := definition.NewStore(registry, bus)
	result, err := store.Apply(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedApplyDefinitions, err)
	}

	slog.Info(LogMsgDefinitionsLoaded,
		"path", path,
		"items_loaded", result.ItemsLoaded,
		"items_rejected", result.ItemsRejected,
		"mechanics_bound", result.MechanicsBound,
		"sections_skipped", result.SectionsSkipped)

	return store, nil
}

// RegisterEventHandlers wires up all event subscribers:
// - the durability reactor (intercepts item.damaged events)
// - the metrics collector (event-based metrics)
// Returns the reactor and collector so shutdown can detach them.
func RegisterEventHandlers(registry *mechanic.Registry, bus event.Bus) (*durability.Reactor, *metrics.EventMetricsCollector, error) {
	factory, err := registry.Resolve(durability.TypeName)
	if err != nil {
		return nil, nil, err
	}
	durabilityFactory, ok := factory.(*durability.Factory)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %T", ErrMsgUnexpectedFactoryType, factory)
	}

	reactor := durability.NewReactor(durabilityFactory, bus)
	reactor.Register()
	slog.Info(LogMsgReactorRegistered)

	collector := metrics.NewEventMetricsCollector()
	collector.Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	return reactor, collector, nil
}
