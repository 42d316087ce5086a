package adapter

import (
	"fmt"
	"io"

	"github.com/diwise/asset-adapter/pkg/oaio/client"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultHostIdentifier  string = "com.foundry.katana"
	DefaultHostDisplayName string = "Katana"
)

type ManagerConfig struct {
	Identifier string         `yaml:"identifier"`
	Settings   map[string]any `yaml:"settings"`
}

type HostConfig struct {
	Identifier  string `yaml:"identifier"`
	DisplayName string `yaml:"displayName"`
}

type PluginsConfig struct {
	Remote []client.Endpoint `yaml:"remote"`
}

type PublishConfig struct {
	// Strategies maps additional host asset types to specification names
	Strategies map[string]string `yaml:"strategies"`
}

type Config struct {
	Manager ManagerConfig `yaml:"manager"`
	Host    HostConfig    `yaml:"host"`
	Plugins PluginsConfig `yaml:"plugins"`
	Publish PublishConfig `yaml:"publish"`

	// DisableRemotePlugins restricts manager discovery to plugins that are
	// compiled into the binary
	DisableRemotePlugins bool `yaml:"-"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	cfg.Manager.Settings, err = normalizeSettings(cfg.Manager.Settings)
	if err != nil {
		return nil, err
	}

	if cfg.Host.Identifier == "" {
		cfg.Host.Identifier = DefaultHostIdentifier
	}
	if cfg.Host.DisplayName == "" {
		cfg.Host.DisplayName = DefaultHostDisplayName
	}

	return cfg, nil
}

// normalizeSettings converts the map[interface{}]interface{} values that
// yaml.v2 produces for nested mappings into map[string]any so that settings
// can be handed to managers that encode them as JSON.
func normalizeSettings(settings map[string]any) (map[string]any, error) {
	if settings == nil {
		return map[string]any{}, nil
	}

	normalized := make(map[string]any, len(settings))
	for k, v := range settings {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("invalid manager setting %s: %w", k, err)
		}
		normalized[k] = nv
	}

	return normalized, nil
}

func normalizeValue(v any) (any, error) {
	switch value := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(value))
		for k, vv := range value {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("key %v is not a string", k)
			}
			nv, err := normalizeValue(vv)
			if err != nil {
				return nil, err
			}
			m[key] = nv
		}
		return m, nil
	case map[string]any:
		return normalizeSettings(value)
	case []any:
		s := make([]any, 0, len(value))
		for _, vv := range value {
			nv, err := normalizeValue(vv)
			if err != nil {
				return nil, err
			}
			s = append(s, nv)
		}
		return s, nil
	}

	return v, nil
}
