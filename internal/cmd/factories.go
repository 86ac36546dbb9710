package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/renato0307/tmlsync/internal/adapters/api"
	"github.com/renato0307/tmlsync/internal/adapters/filestore"
	adapterstorage "github.com/renato0307/tmlsync/internal/adapters/storage"
	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/config"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
	"github.com/renato0307/tmlsync/internal/services"
)

const shutdownTimeout = 5 * time.Second

// Container holds all dependencies for the application
type Container struct {
	// Services
	AsyncSyncService *services.AsyncSyncService
	SyncService      *services.SyncService

	// Shared infrastructure
	Files    *filestore.Store
	Metadata *adapterstorage.SQLiteRepository
	Pool     *async.Pool
	Session  *domain.Session
	Settings *config.Settings

	// Internal - for cleanup only
	cancel context.CancelFunc
}

// NewContainer creates a new Container with all dependencies wired.
// Credentials of the last successful login are restored into the session.
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	metadata, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	files, err := filestore.NewOsStore(settings.ProjectsRoot())
	if err != nil {
		metadata.Close()
		return nil, err
	}

	session := domain.NewSession()
	if settings.Token != "" && settings.ServerAddress != "" {
		session.Set(domain.Credentials{ServerAddress: settings.ServerAddress, Token: settings.Token})
		logging.Logger.Debug("Restored stored credentials", "server", settings.ServerAddress)
	}

	timeouts := services.Timeouts{
		Metadata: settings.MetadataTimeout(),
		Transfer: settings.TransferTimeout(),
	}
	syncService := services.NewSyncService(session, api.NewClient(), files, metadata, timeouts)

	ctx, cancel := context.WithCancel(context.Background())
	pool := async.NewPool(settings.WorkerCount(), async.DefaultQueueSize)

	return &Container{
		AsyncSyncService: services.NewAsyncSyncService(ctx, pool, syncService),
		Files:            files,
		Metadata:         metadata,
		Pool:             pool,
		Session:          session,
		Settings:         settings,
		SyncService:      syncService,
		cancel:           cancel,
	}, nil
}

// Close stops the worker pool and closes the metadata store
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if c.Pool != nil {
		if err := c.Pool.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.Metadata != nil {
		if err := c.Metadata.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewLockController builds a controller bound to the container's service and pool
func (c *Container) NewLockController(host ports.SurveyHost, confirmer ports.Confirmer, listener ports.SyncListener) *services.LockController {
	return services.NewLockController(c.SyncService, host, confirmer, listener, c.Pool)
}
