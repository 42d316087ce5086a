package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
	"github.com/diwise/asset-adapter/internal/pkg/application/notifications"
	"github.com/diwise/asset-adapter/internal/pkg/infrastructure/library"
	"github.com/diwise/asset-adapter/internal/pkg/infrastructure/router"
	"github.com/diwise/asset-adapter/internal/pkg/presentation/api/hostapi"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

const serviceName string = "asset-adapter"

func main() {
	ctx := context.Background()

	flags, err := parseExternalConfig(ctx, DefaultFlags(ctx), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	cfg, err := openConfigFiles(flags)
	if err != nil {
		logger.Error("failed to open configuration files", "err", err.Error())
		os.Exit(1)
	}

	app, err := initialize(ctx, flags, cfg)
	if err != nil {
		logger.Error("initialization failed", "err", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx, net.JoinHostPort(flags[listenAddress], flags[servicePort]))
	if err != nil {
		logger.Error("service failed", "err", err.Error())
		os.Exit(1)
	}
}

type App struct {
	router   *chi.Mux
	notifier notifications.Notifier
}

func initialize(ctx context.Context, flags FlagMap, cfg *AppConfig) (*App, error) {
	defer cfg.adapterConfig.Close()
	defer cfg.opaConfig.Close()

	adapterConfig, err := adapter.LoadConfiguration(cfg.adapterConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load adapter configuration: %w", err)
	}

	adapterConfig.DisableRemotePlugins = remotePluginsDisabled(flags)

	identityAdapter, err := adapter.New(
		ctx, *adapterConfig,
		adapter.WithLogger(logging.GetFromContext(ctx)),
		adapter.WithNativePlugins(library.NativePlugin()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity adapter: %w", err)
	}

	app := &App{
		router: router.New(serviceName),
	}

	if flags[notifierEndpoint] != "" {
		app.notifier, err = notifications.NewNotifier(ctx, flags[notifierEndpoint])
		if err != nil {
			return nil, err
		}
	}

	err = hostapi.RegisterHandlers(ctx, app.router, cfg.opaConfig, identityAdapter, app.notifier, hostapi.NewMetrics())
	if err != nil {
		return nil, fmt.Errorf("failed to register host api handlers: %w", err)
	}

	return app, nil
}

func (a *App) Run(ctx context.Context, address string) error {
	logger := logging.GetFromContext(ctx)

	if a.notifier != nil {
		if err := a.notifier.Start(); err != nil {
			return err
		}
		defer a.notifier.Stop()
	}

	server := &http.Server{
		Addr:              address,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("starting to listen for connections", "address", address)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
