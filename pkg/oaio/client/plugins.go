package client

import (
	"context"
	"fmt"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
)

type Endpoint struct {
	Identifier string `yaml:"identifier"`
	URL        string `yaml:"endpoint"`
}

// RemotePluginSystem provides managers that run out of process and are
// reached over HTTP
type RemotePluginSystem struct {
	endpoints []Endpoint
	options   []func(*remoteManager)
}

func NewRemotePluginSystem(endpoints []Endpoint, options ...func(*remoteManager)) *RemotePluginSystem {
	return &RemotePluginSystem{
		endpoints: endpoints,
		options:   options,
	}
}

func (ps *RemotePluginSystem) Identifiers(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(ps.endpoints))
	for _, e := range ps.endpoints {
		ids = append(ids, e.Identifier)
	}
	return ids, nil
}

func (ps *RemotePluginSystem) Instantiate(ctx context.Context, identifier string) (manager.ManagerInterface, error) {
	for _, e := range ps.endpoints {
		if e.Identifier == identifier {
			return NewRemoteManager(e.Identifier, e.URL, ps.options...), nil
		}
	}

	return nil, errors.NewConfigurationError(fmt.Sprintf("no remote endpoint configured for %s", identifier))
}
