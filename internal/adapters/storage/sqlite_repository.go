package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/tmlsync/internal/config"
	"github.com/renato0307/tmlsync/internal/domain"
	"github.com/renato0307/tmlsync/internal/logging"
	"github.com/renato0307/tmlsync/internal/ports"
)

// SQLiteRepository implements ports.ProjectMetadataRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ProjectMetadataRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and migrates) the metadata database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:  newGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the CLI and an open editor session share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ProjectMetadataModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate project_metadata schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Metadata store opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens the metadata database inside a TMLSYNC_HOME directory
func NewSQLiteRepositoryForHome(home string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(home, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ProjectMetadataReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, projectID string) (*domain.ProjectMetadata, error) {
	var model ProjectMetadataModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&model).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMetadataNotFound, projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata for %s: %w", projectID, err)
	}

	result := metadataModelToDomain(model)
	return &result, nil
}

// List implements ProjectMetadataReader.List, most recently updated first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.ProjectMetadata, error) {
	var models []ProjectMetadataModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("updated_at DESC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}

	result := make([]domain.ProjectMetadata, 0, len(models))
	for _, m := range models {
		result = append(result, metadataModelToDomain(m))
	}
	return result, nil
}

// Save implements ProjectMetadataWriter.Save as an upsert.
// Transfer timestamps already on record are kept when the new value is nil.
func (r *SQLiteRepository) Save(ctx context.Context, metadata domain.ProjectMetadata) error {
	model := domainToMetadataModel(metadata)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":                 model.Name,
				"remote_creation_date": model.RemoteCreationDate,
				"remote_modified_date": model.RemoteModifiedDate,
				"last_downloaded_at":   gorm.Expr("COALESCE(?, last_downloaded_at)", model.LastDownloadedAt),
				"last_uploaded_at":     gorm.Expr("COALESCE(?, last_uploaded_at)", model.LastUploadedAt),
				"updated_at":           time.Now().UTC(),
			}),
		}).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to save metadata for %s: %w", metadata.ProjectID, err)
	}

	logging.Logger.Debug("Saved project metadata", "id", metadata.ProjectID)
	return nil
}

// Delete implements ProjectMetadataWriter.Delete; a missing record is not an error
func (r *SQLiteRepository) Delete(ctx context.Context, projectID string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&ProjectMetadataModel{}).Error
	}, 3)
}

// MarkUploaded implements ProjectMetadataWriter.MarkUploaded
func (r *SQLiteRepository) MarkUploaded(ctx context.Context, projectID string, at time.Time) error {
	return r.touch(ctx, projectID, "last_uploaded_at", at)
}

func (r *SQLiteRepository) touch(ctx context.Context, projectID, column string, at time.Time) error {
	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&ProjectMetadataModel{}).
			Where("project_id = ?", projectID).
			Update(column, at.UTC())
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to update %s for %s: %w", column, projectID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrMetadataNotFound, projectID)
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
