package expert

import (
	"context"

	expertRepo "consultly/database/repository/expert"
	"consultly/models"
	"consultly/services/events"
)

// ExpertService exposes expert profiles and availability management.
type ExpertService interface {
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	List(ctx context.Context, filter models.ExpertFilter) ([]models.Expert, int64, error)
	ListFeatured(ctx context.Context) ([]models.Expert, error)
	Categories(ctx context.Context) ([]string, error)
	UpdateAvailability(ctx context.Context, expertID, actorUserID string, req models.UpdateAvailabilityRequest) (*models.Expert, error)
	UpdateStatus(ctx context.Context, expertID, actorUserID, status string) error
}

// DefaultExpertService implements ExpertService. Cache is optional; when
// nil every read goes straight to the repository.
type DefaultExpertService struct {
	Repo   expertRepo.ExpertRepository
	Events *events.Hub
	Cache  ProfileCache
}
