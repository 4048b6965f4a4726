package review

import (
	"context"

	bookingRepo "consultly/database/repository/booking"
	expertRepo "consultly/database/repository/expert"
	reviewRepo "consultly/database/repository/review"
	"consultly/models"
)

// Service handles review submission and listing. Submitting a review
// also folds the rating into the expert's aggregate.
type Service interface {
	Create(ctx context.Context, clientID, expertID string, req models.CreateReviewRequest) (*models.Review, error)
	ListByExpert(ctx context.Context, expertID string) ([]models.Review, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo        reviewRepo.ReviewRepository
	ExpertRepo  expertRepo.ExpertRepository
	BookingRepo bookingRepo.BookingRepository
}
