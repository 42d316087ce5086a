package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/spf13/pflag"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath

	notifierEndpoint
	disableRemotePlugins

	logFormat
)

type AppConfig struct {
	adapterConfig io.ReadCloser
	opaConfig     io.ReadCloser
}

func DefaultFlags(ctx context.Context) FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),

		configPath: "/opt/diwise/config/asset-adapter.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		notifierEndpoint:     env.GetVariableOrDefault(ctx, "NOTIFIER_ENDPOINT", ""),
		disableRemotePlugins: env.GetVariableOrDefault(ctx, "ASSETADAPTER_DISABLE_REMOTE_PLUGINS", "0"),

		logFormat: "json",
	}
}

func parseExternalConfig(ctx context.Context, flags FlagMap, args []string) (FlagMap, error) {
	flagSet := pflag.NewFlagSet("asset-adapter", pflag.ContinueOnError)

	stringFlag := func(f FlagType, name, usage string) *string {
		return flagSet.String(name, flags[f], usage)
	}

	values := map[FlagType]*string{
		listenAddress:    stringFlag(listenAddress, "listen", "address to listen on, all interfaces if empty"),
		servicePort:      stringFlag(servicePort, "port", "port to serve the host api on"),
		configPath:       stringFlag(configPath, "config", "path to the adapter configuration file"),
		opaPath:          stringFlag(opaPath, "policies", "path to a file with authorization policies"),
		notifierEndpoint: stringFlag(notifierEndpoint, "notifier", "url to post publish notifications to"),
		logFormat:        stringFlag(logFormat, "log-format", "log format, json or text"),
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	for f, v := range values {
		flags[f] = *v
	}

	return flags, nil
}

func remotePluginsDisabled(flags FlagMap) bool {
	value := flags[disableRemotePlugins]
	return value != "" && value != "0"
}

func openConfigFiles(flags FlagMap) (*AppConfig, error) {
	adapterConfig, err := os.Open(flags[configPath])
	if err != nil {
		return nil, fmt.Errorf("failed to open adapter configuration: %w", err)
	}

	opaConfig, err := os.Open(flags[opaPath])
	if err != nil {
		adapterConfig.Close()
		return nil, fmt.Errorf("failed to open authorization policies: %w", err)
	}

	return &AppConfig{
		adapterConfig: adapterConfig,
		opaConfig:     opaConfig,
	}, nil
}
