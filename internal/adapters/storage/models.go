package storage

import "time"

// ProjectMetadataModel is the GORM model for the project_metadata table
type ProjectMetadataModel struct {
	CreatedAt          time.Time
	LastDownloadedAt   *time.Time `gorm:"default:null"`
	LastUploadedAt     *time.Time `gorm:"default:null"`
	Name               string     `gorm:"not null;default:''"`
	ProjectID          string     `gorm:"primaryKey"`
	RemoteCreationDate time.Time
	RemoteModifiedDate time.Time
	UpdatedAt          time.Time `gorm:"index:idx_updated_at"`
}

// TableName specifies the table name for GORM
func (ProjectMetadataModel) TableName() string { return "project_metadata" }
