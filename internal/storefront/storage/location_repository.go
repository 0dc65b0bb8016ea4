package storage

import (
	"errors"
	"sync"

	"gostorefront_api/internal/storefront/business/models"
)

var ErrLocationNotFound = errors.New("location not found")

// LocationRepository supports hard deletes, unlike products which are only
// ever deactivated.
type LocationRepository struct {
	mu        sync.RWMutex
	locations []models.Location
}

func NewLocationRepository(locations []models.Location) *LocationRepository {
	return &LocationRepository{locations: locations}
}

func (r *LocationRepository) GetLocations() []models.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Location, len(r.locations))
	copy(snapshot, r.locations)
	return snapshot
}

func (r *LocationRepository) GetLocationByID(id string) (*models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.locations {
		if l.ID == id {
			location := l
			return &location, nil
		}
	}
	return nil, ErrLocationNotFound
}

func (r *LocationRepository) Insert(location models.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locations = append(r.locations, location)
}

func (r *LocationRepository) Update(location models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.locations {
		if l.ID == location.ID {
			r.locations[i] = location
			return nil
		}
	}
	return ErrLocationNotFound
}

func (r *LocationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.locations {
		if l.ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return ErrLocationNotFound
}
