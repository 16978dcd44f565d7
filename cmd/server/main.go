package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/events"
	"github.com/MKhiriev/go-tweet/internal/handler"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/search"
	"github.com/MKhiriev/go-tweet/internal/server"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/internal/store"
	"github.com/MKhiriev/go-tweet/internal/workers"
	"github.com/MKhiriev/go-tweet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("go-tweet server %s\n", buildInfo)

	log := logger.NewLogger("go-tweet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	if err = run(cfg, log); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// run wires the server and blocks until it stops. Every resource opened
// here is released before it returns, including on startup errors.
func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	var (
		index search.TweetIndex
		sinks []events.Sink
	)

	if len(cfg.Search.Addresses) > 0 {
		es, err := search.NewElasticClient(cfg.Search)
		if err != nil {
			return fmt.Errorf("error creating search client: %w", err)
		}
		elasticIndex := search.NewElasticIndex(es, cfg.Search.Index, log)
		if err = elasticIndex.EnsureIndex(ctx); err != nil {
			// search answers 503 until the index becomes reachable
			log.Err(err).Msg("error preparing search index")
		}
		index = elasticIndex
		sinks = append(sinks, elasticIndex)
	} else {
		log.Warn().Msg("search is not configured")
	}

	if cfg.Broker.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.Broker)
		if err != nil {
			return fmt.Errorf("error connecting to broker: %w", err)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
	}

	var emitter events.Emitter = events.NopEmitter{}
	var bus *events.Bus
	if len(sinks) > 0 {
		bus = events.NewBus(events.DefaultBufferSize, log)
		emitter = bus
	}

	services, err := service.NewServices(storages, index, emitter, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, storages.RateLimiter, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	if bus != nil {
		bg := workers.NewWorkers(workers.NewEventWorker(bus.Events(), log, sinks...))
		bg.Run(ctx)
		// drain buffered events before the sinks are closed
		defer func() {
			bus.Close()
			bg.Wait()
		}()
	}

	srv.RunServer()

	return nil
}
