package admin

import (
	"github.com/google/uuid"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/storage"
	"gostorefront_api/pkg/logger"
)

type LocationInput struct {
	Name    string
	Address string
	City    string
}

// LocationService manages pickup points. Locations support hard deletes.
type LocationService struct {
	repo *storage.LocationRepository
	log  logger.Logger
}

func NewLocationService(repo *storage.LocationRepository, log logger.Logger) *LocationService {
	return &LocationService{repo: repo, log: log}
}

func (s *LocationService) CreateLocation(input LocationInput) (*models.Location, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	location := models.Location{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
	}
	s.repo.Insert(location)
	return &location, nil
}

func (s *LocationService) UpdateLocation(id string, input LocationInput) (*models.Location, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	location := models.Location{ID: id, Name: input.Name, Address: input.Address, City: input.City}
	if err := s.repo.Update(location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *LocationService) DeleteLocation(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.log != nil {
		s.log.Log("location %s deleted", id)
	}
	return nil
}
