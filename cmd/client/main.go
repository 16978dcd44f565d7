package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/client"
	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/store"
	"github.com/MKhiriev/go-tweet/internal/tui"
	"github.com/MKhiriev/go-tweet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := logger.NewClientLogger("go-tweet-client", cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	if log, err = log.WithLevel(cfg.LogLevel); err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "error setting log level: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, log)
	if err != nil {
		log.Err(err).Msg("client run error")
	}
	logFile.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	api, err := adapter.NewTweetAPI(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating api adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating local storage: %w", err)
	}
	defer localStorage.Close()

	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Str("server", cfg.Adapter.ServerURL).Msg("starting client")

	services := service.NewClientServices(localStorage, api, log)
	ui := tui.New(services, buildInfo, log)

	return client.NewApp(services, ui, log).Run(ctx)
}
