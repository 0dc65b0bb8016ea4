package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostorefront_api/internal/storefront/storage"
)

func newLocationService() (*LocationService, *storage.LocationRepository) {
	repo := storage.NewLocationRepository(storage.FixtureLocations())
	return NewLocationService(repo, nil), repo
}

func TestCreateLocation(t *testing.T) {
	service, repo := newLocationService()

	created, err := service.CreateLocation(LocationInput{
		Name: "Mall of Scandinavia", Address: "Stjärntorget 2", City: "Solna",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.GetLocations(), 4)
}

func TestCreateLocationRequiresName(t *testing.T) {
	service, _ := newLocationService()
	_, err := service.CreateLocation(LocationInput{City: "Solna"})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestUpdateLocation(t *testing.T) {
	service, repo := newLocationService()

	_, err := service.UpdateLocation("location2", LocationInput{
		Name: "Solna Centrum", Address: "Solnavägen 1", City: "Solna",
	})
	require.NoError(t, err)

	stored, err := repo.GetLocationByID("location2")
	require.NoError(t, err)
	assert.Equal(t, "Solna Centrum", stored.Name)
}

func TestDeleteLocationIsHardDelete(t *testing.T) {
	service, repo := newLocationService()

	require.NoError(t, service.DeleteLocation("location3"))
	assert.Len(t, repo.GetLocations(), 2)
	_, err := repo.GetLocationByID("location3")
	assert.ErrorIs(t, err, storage.ErrLocationNotFound)
}
