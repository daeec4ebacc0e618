package definition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/emberworks/itemforge/internal/event"
	"github.com/emberworks/itemforge/internal/item"
	"github.com/emberworks/itemforge/internal/logger"
	"github.com/emberworks/itemforge/internal/mechanic"
	"github.com/emberworks/itemforge/internal/metrics"
)

// ApplyResult contains the result of applying a definition config
type ApplyResult struct {
	ItemsLoaded     int
	ItemsRejected   int
	MechanicsBound  int
	SectionsSkipped int
}

// Store owns the loaded item definitions, the mechanics bound to them, and
// the build pipeline that turns a definition into a live stack.
//
// Apply runs in the single-threaded initialization/reload phase. Reads are
// guarded with a read lock because the HTTP inspection surface queries the
// store concurrently with nothing else holding the write lock.
type Store struct {
	registry *mechanic.Registry
	bus      event.Bus

	mu        sync.RWMutex
	defs      map[string]Def
	mechanics map[string][]mechanic.Mechanic

	// prototypes memoizes built descriptions per item identifier. Safe to
	// share: Description is copy-on-write, so a cached value never mutates.
	prototypes *expirable.LRU[string, item.Description]

	titler cases.Caser
}

// NewStore creates a store over the given mechanic registry. bus may be nil
// when no event surface is wired (tests).
func NewStore(registry *mechanic.Registry, bus event.Bus) *Store {
	return &Store{
		registry:   registry,
		bus:        bus,
		defs:       make(map[string]Def),
		mechanics:  make(map[string][]mechanic.Mechanic),
		prototypes: expirable.NewLRU[string, item.Description](PrototypeCacheSize, nil, 0),
		titler:     cases.Title(language.English),
	}
}

// Apply runs the binding pass over a loaded config.
//
// Error containment follows the loading contract: an unknown mechanic type
// skips that section and the item still loads; an invalid mechanic section
// rejects the whole item definition (nothing bound for it) and all other
// definitions continue; a duplicate binding is rejected while the first
// binding stands. All failures are reported, none abort the pass.
func (s *Store) Apply(ctx context.Context, config *Config) (*ApplyResult, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	log := logger.FromContext(ctx)
	result := &ApplyResult{}

	s.mu.Lock()
	for _, def := range config.Items {
		parsed, err := s.parseSections(ctx, def, result)
		if err != nil {
			log.Warn(LogMsgInvalidDefinition, "item", def.InternalName, "error", err)
			metrics.BindingErrors.WithLabelValues(metrics.ReasonInvalidConfig).Inc()
			result.ItemsRejected++
			continue
		}

		for _, p := range parsed {
			factory := p.Factory
			if err := factory.Bind(def.InternalName, p.Mechanic); err != nil {
				log.Warn(LogMsgDuplicateBinding, "item", def.InternalName, "mechanic", factory.Type(), "error", err)
				metrics.BindingErrors.WithLabelValues(metrics.ReasonDuplicate).Inc()
				continue
			}
			s.mechanics[def.InternalName] = append(s.mechanics[def.InternalName], p.Mechanic)
			metrics.MechanicsBound.WithLabelValues(factory.Type()).Inc()
			result.MechanicsBound++
		}

		s.defs[def.InternalName] = def
		s.prototypes.Remove(def.InternalName)
		result.ItemsLoaded++
	}
	s.mu.Unlock()

	log.Info(LogMsgApplyCompleted,
		"loaded", result.ItemsLoaded,
		"rejected", result.ItemsRejected,
		"bound", result.MechanicsBound,
		"skipped", result.SectionsSkipped)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewDefinitionsAppliedEvent(result.MechanicsBound, result.ItemsRejected)); err != nil {
			log.Warn(LogMsgAppliedEventError, "error", err)
		}
	}

	return result, nil
}

type parsedMechanic struct {
	Factory  mechanic.Factory
	Mechanic mechanic.Mechanic
}

// parseSections parses every mechanic section of one definition before any
// binding happens, so a malformed section rejects the definition atomically.
// Sections are processed in sorted type-name order; JSON object order is not
// preserved by Go maps, and a deterministic order keeps reloads reproducible.
func (s *Store) parseSections(ctx context.Context, def Def, result *ApplyResult) ([]parsedMechanic, error) {
	log := logger.FromContext(ctx)

	names := make([]string, 0, len(def.Mechanics))
	for name := range def.Mechanics {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]parsedMechanic, 0, len(names))
	for _, name := range names {
		factory, err := s.registry.Resolve(name)
		if err != nil {
			if errors.Is(err, mechanic.ErrUnknownType) {
				log.Warn(LogMsgUnknownMechanicType, "item", def.InternalName, "mechanic", name)
				metrics.BindingErrors.WithLabelValues(metrics.ReasonUnknownType).Inc()
				result.SectionsSkipped++
				continue
			}
			return nil, err
		}

		m, err := factory.Parse(def.InternalName, def.Mechanics[name])
		if err != nil {
			log.Warn(LogMsgInvalidSection, "item", def.InternalName, "mechanic", name, "error", err)
			return nil, err
		}
		parsed = append(parsed, parsedMechanic{Factory: factory, Mechanic: m})
	}

	return parsed, nil
}

// Def returns the definition for an item identifier.
func (s *Store) Def(itemID string) (Def, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[itemID]
	return def, ok
}

// Items returns all loaded definitions sorted by internal name.
func (s *Store) Items() []Def {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Def, 0, len(s.defs))
	for _, def := range s.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalName < out[j].InternalName })
	return out
}

// MechanicTypes returns the mechanic type names bound to an item identifier.
func (s *Store) MechanicTypes(itemID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.mechanics[itemID]))
	for _, m := range s.mechanics[itemID] {
		out = append(out, m.Type())
	}
	sort.Strings(out)
	return out
}

// BuildDescription runs the build pipeline for an item identifier: a fresh
// description, the display name, then every bound mechanic's modifiers folded
// in order. The built prototype is memoized.
func (s *Store) BuildDescription(itemID string) (item.Description, error) {
	if d, ok := s.prototypes.Get(itemID); ok {
		return d, nil
	}

	s.mu.RLock()
	def, ok := s.defs[itemID]
	bound := s.mechanics[itemID]
	s.mu.RUnlock()

	if !ok {
		return item.Description{}, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}

	d := item.NewDescription(itemID).SetDisplayName(s.titler.String(def.PublicName))
	for _, m := range bound {
		d = item.ApplyAll(d, m.Modifiers())
	}

	s.prototypes.Add(itemID, d)
	return d, nil
}

// NewStack finalizes a fresh stack of one from the item's built prototype.
func (s *Store) NewStack(itemID string) (*item.Stack, error) {
	d, err := s.BuildDescription(itemID)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	wearMax := s.defs[itemID].WearMax
	s.mu.RUnlock()

	return d.Finalize(wearMax, 1), nil
}

// clearable is implemented by factories whose bindings can be dropped on reload.
type clearable interface {
	Clear()
}

// Reset drops all definitions, bindings, and cached prototypes ahead of a
// reload. Factories that expose Clear are cleared; the registry itself keeps
// its registrations, which are one-shot for the process lifetime.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defs = make(map[string]Def)
	s.mechanics = make(map[string][]mechanic.Mechanic)
	s.prototypes.Purge()

	for _, name := range s.registry.Types() {
		factory, err := s.registry.Resolve(name)
		if err != nil {
			continue
		}
		if c, ok := factory.(clearable); ok {
			c.Clear()
		}
	}
}
