package review_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"consultly/models"
	"consultly/services/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, r *models.Review) error {
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviewRepo) ListByExpert(_ context.Context, expertID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ExpertID == expertID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) EnsureIndexes(context.Context) error { return nil }

type ratingExpertRepo struct {
	expert      *models.Expert
	savedRating float64
	savedTotal  int
}

func (r *ratingExpertRepo) Create(context.Context, *models.Expert) error { return nil }
func (r *ratingExpertRepo) GetByID(_ context.Context, id string) (*models.Expert, error) {
	if r.expert != nil && r.expert.ID == id {
		copied := *r.expert
		return &copied, nil
	}
	return nil, fmt.Errorf("expert %s not found", id)
}
func (r *ratingExpertRepo) GetByUserID(context.Context, string) (*models.Expert, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *ratingExpertRepo) List(context.Context, models.ExpertFilter) ([]models.Expert, int64, error) {
	return nil, 0, nil
}
func (r *ratingExpertRepo) ListFeatured(context.Context) ([]models.Expert, error) { return nil, nil }
func (r *ratingExpertRepo) Update(context.Context, *models.Expert) error          { return nil }
func (r *ratingExpertRepo) UpdateAvailability(context.Context, string, []models.AvailabilityRule, string) error {
	return nil
}
func (r *ratingExpertRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (r *ratingExpertRepo) UpdateRating(_ context.Context, _ string, rating float64, totalReviews int) error {
	r.savedRating = rating
	r.savedTotal = totalReviews
	return nil
}
func (r *ratingExpertRepo) ListCategories(context.Context) ([]string, error) { return nil, nil }
func (r *ratingExpertRepo) Delete(context.Context, string) error             { return nil }
func (r *ratingExpertRepo) EnsureIndexes(context.Context) error              { return nil }

type historyBookingRepo struct {
	bookings []models.Booking
}

func (h *historyBookingRepo) Create(context.Context, *models.Booking) error { return nil }
func (h *historyBookingRepo) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, fmt.Errorf("not implemented")
}
func (h *historyBookingRepo) List(_ context.Context, filter models.BookingFilter) ([]models.Booking, int64, error) {
	var out []models.Booking
	for _, b := range h.bookings {
		if filter.ClientID != "" && b.ClientID != filter.ClientID {
			continue
		}
		if filter.ExpertID != "" && b.ExpertID != filter.ExpertID {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}
func (h *historyBookingRepo) ListOverlapping(context.Context, string, time.Time, time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (h *historyBookingRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (h *historyBookingRepo) Update(context.Context, *models.Booking) error      { return nil }
func (h *historyBookingRepo) EnsureIndexes(context.Context) error                { return nil }

func newReviewFixture() (*review.DefaultService, *fakeReviewRepo, *ratingExpertRepo) {
	expertRepo := &ratingExpertRepo{expert: &models.Expert{
		ID:           "expert-1",
		UserID:       "user-expert-1",
		Name:         "Dana Advisor",
		Rating:       4.0,
		TotalReviews: 1,
	}}
	bookingRepo := &historyBookingRepo{bookings: []models.Booking{
		{ID: "booking-1", ExpertID: "expert-1", ClientID: "client-1", Status: models.BookingStatusCompleted},
	}}
	repo := &fakeReviewRepo{}
	svc := &review.DefaultService{
		Repo:        repo,
		ExpertRepo:  expertRepo,
		BookingRepo: bookingRepo,
	}
	return svc, repo, expertRepo
}

func TestCreateReview(t *testing.T) {
	svc, repo, expertRepo := newReviewFixture()

	created, err := svc.Create(context.Background(), "client-1", "expert-1", models.CreateReviewRequest{
		Rating:    5,
		Comment:   "Clear, actionable advice.",
		BookingID: "booking-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "client-1", created.ClientID)
	require.Len(t, repo.reviews, 1)

	// (4.0 * 1 + 5) / 2
	assert.InDelta(t, 4.5, expertRepo.savedRating, 1e-9)
	assert.Equal(t, 2, expertRepo.savedTotal)
}

func TestCreateReviewRequiresBookingHistory(t *testing.T) {
	svc, repo, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), "stranger", "expert-1", models.CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, review.ErrNoBookingHistory)
	assert.Empty(t, repo.reviews)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, repo, _ := newReviewFixture()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), "client-1", "expert-1", models.CreateReviewRequest{Rating: rating})
		assert.Error(t, err)
	}
	assert.Empty(t, repo.reviews)
}

func TestCreateReviewUnknownExpert(t *testing.T) {
	svc, repo, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), "client-1", "nobody", models.CreateReviewRequest{Rating: 4})
	assert.Error(t, err)
	assert.Empty(t, repo.reviews)
}

func TestListByExpert(t *testing.T) {
	svc, repo, _ := newReviewFixture()
	repo.reviews = []models.Review{
		{ID: "r1", ExpertID: "expert-1", Rating: 5},
		{ID: "r2", ExpertID: "expert-2", Rating: 3},
	}

	reviews, err := svc.ListByExpert(context.Background(), "expert-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r1", reviews[0].ID)
}
