package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoBookingHistory rejects reviews from clients who never booked the
// expert they are rating.
var ErrNoBookingHistory = errors.New("no booking with this expert")

// Create persists the review and recomputes the expert's aggregate
// rating. The aggregate update is advisory: a failure there is logged
// but does not undo the stored review.
func (s *DefaultService) Create(ctx context.Context, clientID, expertID string, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating %d out of range", req.Rating)
	}

	expert, err := s.ExpertRepo.GetByID(ctx, expertID)
	if err != nil {
		return nil, err
	}

	bookings, _, err := s.BookingRepo.List(ctx, models.BookingFilter{
		ClientID: clientID,
		ExpertID: expertID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check booking history: %w", err)
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookingHistory
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ExpertID:  expertID,
		ClientID:  clientID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	total := expert.TotalReviews + 1
	rating := (expert.Rating*float64(expert.TotalReviews) + float64(req.Rating)) / float64(total)
	if err := s.ExpertRepo.UpdateRating(ctx, expertID, rating, total); err != nil {
		utils.GetLogger().Warn("failed to update expert rating",
			zap.String("expertID", expertID), zap.Error(err))
	}

	return review, nil
}

func (s *DefaultService) ListByExpert(ctx context.Context, expertID string) ([]models.Review, error) {
	return s.Repo.ListByExpert(ctx, expertID)
}
