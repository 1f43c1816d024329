package cmd

import (
	"context"

	adapterrandom "github.com/renato0307/appdeck/internal/adapters/random"
	adapterstorage "github.com/renato0307/appdeck/internal/adapters/storage"
	adaptersuggest "github.com/renato0307/appdeck/internal/adapters/suggest"
	"github.com/renato0307/appdeck/internal/config"
	"github.com/renato0307/appdeck/internal/logging"
	"github.com/renato0307/appdeck/internal/ports"
	"github.com/renato0307/appdeck/internal/services"
)

// ContainerOptions selects the adapters wired into a Container
type ContainerOptions struct {
	Ephemeral   bool   // in-memory store instead of $APPDECK_HOME/state.db
	Seed        uint64 // 0 draws simulation outcomes from a random seed
	SeedData    bool   // fill empty collections with demo apps and todos
	TestCommand string // default test command of new apps
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	Dashboard        *services.Dashboard
	MigrationService *services.MigrationService

	// Internal - for cleanup only
	store ports.CollectionStore
}

// NewContainer creates a new Container with all dependencies wired and the
// dashboard state loaded
func NewContainer(ctx context.Context, opts ContainerOptions) (*Container, error) {
	var store ports.CollectionStore
	if opts.Ephemeral {
		logging.Logger.Info("Using in-memory store")
		store = adapterstorage.NewMemoryStore()
	} else {
		sqliteStore, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	}

	var random ports.RandomSource
	if opts.Seed != 0 {
		random = adapterrandom.NewSeededSource(opts.Seed)
	} else {
		random = adapterrandom.NewSource()
	}

	serviceOpts := []services.Option{
		services.WithRandomSource(random),
		services.WithSeedData(opts.SeedData),
	}
	if opts.TestCommand != "" {
		serviceOpts = append(serviceOpts, services.WithDefaultTestCommand(opts.TestCommand))
	}

	// Create store factory for migration service
	storeFactory := func(homePath string) (ports.CollectionStore, error) {
		return adapterstorage.NewSQLiteStoreForHome(homePath)
	}

	dashboard := services.NewDashboard(store, adaptersuggest.NewStaticSuggester(), serviceOpts...)
	dashboard.Load(ctx)

	return &Container{
		Dashboard:        dashboard,
		MigrationService: services.NewMigrationService(storeFactory),
		store:            store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
