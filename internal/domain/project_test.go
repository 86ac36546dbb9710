package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermission_CanWrite(t *testing.T) {
	assert.True(t, PermissionAdmin.CanWrite())
	assert.True(t, PermissionReadAndWrite.CanWrite())
	assert.False(t, PermissionReadOnly.CanWrite())
	assert.False(t, Permission("").CanWrite())
}

func TestNewProject_Validate(t *testing.T) {
	base := NewProject{Name: "Cave", Description: "Deep", CountryCode: "US"}

	require.NoError(t, base.Validate())

	missingName := base
	missingName.Name = "  "
	var verr *ValidationError
	require.ErrorAs(t, missingName.Validate(), &verr)
	assert.Equal(t, "name", verr.Field)

	onlyLat := base
	onlyLat.Latitude = "45.5"
	require.NoError(t, onlyLat.Validate(), "coordinates are independent")
	lat, err := onlyLat.ParsedLatitude()
	require.NoError(t, err)
	assert.InDelta(t, 45.5, *lat, 1e-9)

	badLon := base
	badLon.Longitude = "east"
	require.ErrorAs(t, badLon.Validate(), &verr)
	assert.Equal(t, "longitude", verr.Field)

	outOfRange := base
	outOfRange.Latitude = "91"
	assert.Error(t, outOfRange.Validate())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(LockUnlocked, LockAcquiring))
	assert.True(t, CanTransition(LockAcquiring, LockLocked))
	assert.True(t, CanTransition(LockAcquiring, LockUnlocked))
	assert.True(t, CanTransition(LockLocked, LockReleasing))
	assert.True(t, CanTransition(LockLocked, LockUnlocked))
	assert.True(t, CanTransition(LockReleasing, LockLocked))
	assert.True(t, CanTransition(LockReleasing, LockUnlocked))

	assert.False(t, CanTransition(LockUnlocked, LockLocked))
	assert.False(t, CanTransition(LockUnlocked, LockReleasing))
	assert.False(t, CanTransition(LockAcquiring, LockReleasing))
}

func TestProjectMetadata_CompareIdentity(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &Project{ID: "p1", CreationDate: created}

	var none *ProjectMetadata
	assert.Equal(t, MetadataNew, none.CompareIdentity(p))
	assert.Equal(t, MetadataMatch, (&ProjectMetadata{ProjectID: "p1", RemoteCreationDate: created}).CompareIdentity(p))
	assert.Equal(t, MetadataMatch, (&ProjectMetadata{ProjectID: "p1"}).CompareIdentity(p))
	assert.Equal(t, MetadataMismatch, (&ProjectMetadata{ProjectID: "p1", RemoteCreationDate: created.Add(time.Hour)}).CompareIdentity(p))
}

func TestProject_IsLockedBy(t *testing.T) {
	p := &Project{ActiveMutex: &Mutex{User: "Caver@Example.com"}}
	assert.True(t, p.IsLockedBy("caver@example.com"))
	assert.False(t, p.IsLockedBy("other@example.com"))
	assert.False(t, (&Project{}).IsLockedBy("caver@example.com"))
}
