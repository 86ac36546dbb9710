package storage

import (
	"github.com/renato0307/tmlsync/internal/domain"
)

// metadataModelToDomain converts a ProjectMetadataModel (GORM) to domain.ProjectMetadata
func metadataModelToDomain(m ProjectMetadataModel) domain.ProjectMetadata {
	return domain.ProjectMetadata{
		CreatedAt:          m.CreatedAt,
		LastDownloadedAt:   m.LastDownloadedAt,
		LastUploadedAt:     m.LastUploadedAt,
		Name:               m.Name,
		ProjectID:          m.ProjectID,
		RemoteCreationDate: m.RemoteCreationDate,
		RemoteModifiedDate: m.RemoteModifiedDate,
		UpdatedAt:          m.UpdatedAt,
	}
}

// domainToMetadataModel converts a domain.ProjectMetadata to ProjectMetadataModel (GORM)
func domainToMetadataModel(m domain.ProjectMetadata) ProjectMetadataModel {
	return ProjectMetadataModel{
		CreatedAt:          m.CreatedAt,
		LastDownloadedAt:   m.LastDownloadedAt,
		LastUploadedAt:     m.LastUploadedAt,
		Name:               m.Name,
		ProjectID:          m.ProjectID,
		RemoteCreationDate: m.RemoteCreationDate.UTC(),
		RemoteModifiedDate: m.RemoteModifiedDate.UTC(),
		UpdatedAt:          m.UpdatedAt,
	}
}
