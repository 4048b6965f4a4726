// File: database/repository/expert/interface.go
package expertRepo

import (
	"context"

	"consultly/database"
	"consultly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ExpertRepository interface {
	Create(ctx context.Context, expert *models.Expert) error
	GetByID(ctx context.Context, id string) (*models.Expert, error)
	GetByUserID(ctx context.Context, userID string) (*models.Expert, error)
	List(ctx context.Context, filter models.ExpertFilter) ([]models.Expert, int64, error)
	ListFeatured(ctx context.Context) ([]models.Expert, error)
	Update(ctx context.Context, expert *models.Expert) error
	UpdateAvailability(ctx context.Context, expertID string, rules []models.AvailabilityRule, timezone string) error
	UpdateStatus(ctx context.Context, expertID, status string) error
	UpdateRating(ctx context.Context, expertID string, rating float64, totalReviews int) error
	ListCategories(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoExpertRepo struct {
	coll *mongo.Collection
}

// NewMongoExpertRepo constructs a new MongoDB ExpertRepository.
func NewMongoExpertRepo() ExpertRepository {
	return &mongoExpertRepo{
		coll: database.DB().Collection("experts"),
	}
}
