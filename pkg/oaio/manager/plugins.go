package manager

import (
	"context"
	"fmt"
	"slices"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
)

// ImplementationFactory discovers and instantiates manager implementations
type ImplementationFactory interface {
	Identifiers(ctx context.Context) ([]string, error)
	Instantiate(ctx context.Context, identifier string) (ManagerInterface, error)
}

// NativePlugin registers a manager implementation that is compiled into
// the binary
type NativePlugin struct {
	Identifier string
	New        func() ManagerInterface
}

type NativePluginSystem struct {
	plugins map[string]NativePlugin
	logger  LoggerInterface
}

func NewNativePluginSystem(logger LoggerInterface, plugins ...NativePlugin) *NativePluginSystem {
	ps := &NativePluginSystem{
		plugins: map[string]NativePlugin{},
		logger:  logger,
	}

	for _, p := range plugins {
		ps.Register(p)
	}

	return ps
}

// Register adds a plugin, replacing any earlier plugin with the same identifier
func (ps *NativePluginSystem) Register(p NativePlugin) {
	ps.plugins[p.Identifier] = p
}

func (ps *NativePluginSystem) Identifiers(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(ps.plugins))
	for id := range ps.plugins {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (ps *NativePluginSystem) Instantiate(ctx context.Context, identifier string) (ManagerInterface, error) {
	p, ok := ps.plugins[identifier]
	if !ok {
		return nil, errors.NewConfigurationError(fmt.Sprintf("no native plugin registered for %s", identifier))
	}

	if ps.logger != nil {
		ps.logger.Log(ctx, SeverityDebug, fmt.Sprintf("instantiating native plugin %s", identifier))
	}

	return p.New(), nil
}

// HybridPluginSystem combines several plugin systems. When more than one of
// them provides the same identifier the system listed first wins.
type HybridPluginSystem struct {
	systems []ImplementationFactory
	logger  LoggerInterface
}

func NewHybridPluginSystem(logger LoggerInterface, systems ...ImplementationFactory) *HybridPluginSystem {
	return &HybridPluginSystem{
		systems: systems,
		logger:  logger,
	}
}

func (h *HybridPluginSystem) Identifiers(ctx context.Context) ([]string, error) {
	ids := []string{}

	for _, s := range h.systems {
		sids, err := s.Identifiers(ctx)
		if err != nil {
			return nil, err
		}
		for _, id := range sids {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}

	slices.Sort(ids)
	return ids, nil
}

func (h *HybridPluginSystem) Instantiate(ctx context.Context, identifier string) (ManagerInterface, error) {
	for _, s := range h.systems {
		sids, err := s.Identifiers(ctx)
		if err != nil {
			return nil, err
		}

		if slices.Contains(sids, identifier) {
			return s.Instantiate(ctx, identifier)
		}
	}

	return nil, errors.NewConfigurationError(fmt.Sprintf("no plugin found for %s", identifier))
}

type DefaultManagerConfig struct {
	Identifier string
	Settings   map[string]any
}

// DefaultManagerForInterface instantiates and initializes the manager named
// by cfg. It returns a nil Manager and no error when no manager is configured.
func DefaultManagerForInterface(ctx context.Context, cfg DefaultManagerConfig, host HostInterface, factory ImplementationFactory, logger LoggerInterface) (*Manager, error) {
	if cfg.Identifier == "" {
		return nil, nil
	}

	impl, err := factory.Instantiate(ctx, cfg.Identifier)
	if err != nil {
		return nil, err
	}

	settings := cfg.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	m := NewManager(impl, HostSession{Host: host, Logger: logger})
	if err = m.Initialize(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to initialize manager %s: %w", cfg.Identifier, err)
	}

	return m, nil
}
