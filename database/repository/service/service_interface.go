package serviceRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceRepository defines methods for reading the treatment catalog.
type ServiceRepository interface {
	// GetAll retrieves the full catalog in insertion order.
	GetAll() ([]models.Service, error)
	// GetAllWithProjection retrieves the catalog with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.Service, error)
	// Create inserts a new catalog entry. Used by seeding, not by handlers.
	Create(svc *models.Service) error
}
