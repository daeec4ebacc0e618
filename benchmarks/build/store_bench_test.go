package build_bench

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/emberworks/itemforge/internal/definition"
	"github.com/emberworks/itemforge/internal/durability"
	"github.com/emberworks/itemforge/internal/event"
	"github.com/emberworks/itemforge/internal/mechanic"
)

const benchItemCount = 64

func newBenchStore(b *testing.B) *definition.Store {
	b.Helper()

	registry := mechanic.NewRegistry()
	if err := registry.Register(durability.TypeName, durability.NewFactory); err != nil {
		b.Fatal(err)
	}

	defs := make([]definition.Def, 0, benchItemCount)
	for i := 0; i < benchItemCount; i++ {
		defs = append(defs, definition.Def{
			InternalName: fmt.Sprintf("tool_%d", i),
			PublicName:   fmt.Sprintf("tool %d", i),
			WearMax:      250,
			Mechanics: map[string]json.RawMessage{
				"durability": json.RawMessage(`{"value": 1000}`),
			},
		})
	}

	store := definition.NewStore(registry, nil)
	if _, err := store.Apply(context.Background(), &definition.Config{Version: "1.0", Items: defs}); err != nil {
		b.Fatal(err)
	}
	return store
}

// BenchmarkBuildDescription measures the modifier fold for a cold
// prototype cache versus repeated cached builds.
func BenchmarkBuildDescription(b *testing.B) {
	store := newBenchStore(b)

	b.Run("cached", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := store.BuildDescription("tool_0"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("rotating", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			id := fmt.Sprintf("tool_%d", i%benchItemCount)
			if _, err := store.BuildDescription(id); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkNewStack measures full stack materialization, including the
// description fold and state finalization.
func BenchmarkNewStack(b *testing.B) {
	store := newBenchStore(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := store.NewStack("tool_0"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDamageDispatch measures the full event path: publish an
// item.damaged event through the bus and let the reactor recompute wear.
func BenchmarkDamageDispatch(b *testing.B) {
	registry := mechanic.NewRegistry()
	if err := registry.Register(durability.TypeName, durability.NewFactory); err != nil {
		b.Fatal(err)
	}
	factory, err := registry.Resolve(durability.TypeName)
	if err != nil {
		b.Fatal(err)
	}
	durabilityFactory := factory.(*durability.Factory)

	bus := event.NewMemoryBus()
	reactor := durability.NewReactor(durabilityFactory, bus)
	reactor.Register()
	defer reactor.Close()

	store := definition.NewStore(registry, bus)
	if _, err := store.Apply(context.Background(), &definition.Config{
		Version: "1.0",
		Items: []definition.Def{{
			InternalName: "tool_bench",
			PublicName:   "bench tool",
			WearMax:      250,
			Mechanics: map[string]json.RawMessage{
				"durability": json.RawMessage(`{"value": 2147483647}`),
			},
		}},
	}); err != nil {
		b.Fatal(err)
	}

	stack, err := store.NewStack("tool_bench")
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := bus.Publish(ctx, event.NewItemDamagedEvent(stack, 1)); err != nil {
			b.Fatal(err)
		}
	}
}
