package availability_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"consultly/models"
	"consultly/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpertRepo struct {
	expert *models.Expert
}

func (s *stubExpertRepo) Create(context.Context, *models.Expert) error { return nil }
func (s *stubExpertRepo) GetByID(_ context.Context, id string) (*models.Expert, error) {
	if s.expert != nil && s.expert.ID == id {
		copied := *s.expert
		return &copied, nil
	}
	return nil, fmt.Errorf("expert %s not found", id)
}
func (s *stubExpertRepo) GetByUserID(context.Context, string) (*models.Expert, error) {
	return nil, fmt.Errorf("not implemented")
}
func (s *stubExpertRepo) List(context.Context, models.ExpertFilter) ([]models.Expert, int64, error) {
	return nil, 0, nil
}
func (s *stubExpertRepo) ListFeatured(context.Context) ([]models.Expert, error) { return nil, nil }
func (s *stubExpertRepo) Update(context.Context, *models.Expert) error          { return nil }
func (s *stubExpertRepo) UpdateAvailability(context.Context, string, []models.AvailabilityRule, string) error {
	return nil
}
func (s *stubExpertRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (s *stubExpertRepo) UpdateRating(context.Context, string, float64, int) error {
	return nil
}
func (s *stubExpertRepo) ListCategories(context.Context) ([]string, error) { return nil, nil }
func (s *stubExpertRepo) Delete(context.Context, string) error             { return nil }
func (s *stubExpertRepo) EnsureIndexes(context.Context) error              { return nil }

type stubBookingRepo struct {
	overlapping []models.Booking
}

func (s *stubBookingRepo) Create(context.Context, *models.Booking) error { return nil }
func (s *stubBookingRepo) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, fmt.Errorf("not implemented")
}
func (s *stubBookingRepo) List(context.Context, models.BookingFilter) ([]models.Booking, int64, error) {
	return nil, 0, nil
}
func (s *stubBookingRepo) ListOverlapping(context.Context, string, time.Time, time.Time) ([]models.Booking, error) {
	return s.overlapping, nil
}
func (s *stubBookingRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (s *stubBookingRepo) Update(context.Context, *models.Booking) error      { return nil }
func (s *stubBookingRepo) EnsureIndexes(context.Context) error                { return nil }

func availabilityExpert() *models.Expert {
	return &models.Expert{
		ID:       "expert-1",
		UserID:   "user-1",
		Timezone: "UTC",
		Availability: []models.AvailabilityRule{
			{ID: "rule-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		},
		Services: []models.ExpertService{
			{ID: "svc-1", DurationMinutes: 60, Price: 80, Currency: "USD", IsActive: true},
		},
	}
}

func TestGetDailyAvailability(t *testing.T) {
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{},
	}

	resp, err := svc.GetDailyAvailability(context.Background(), "expert-1", "2025-03-10", "svc-1")
	require.NoError(t, err)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, 60, resp.Duration)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, resp.AvailableSlots)
	assert.Len(t, resp.Slots, 3)
}

func TestGetDailyAvailabilityMarksBookedSlots(t *testing.T) {
	booked := models.Booking{
		ExpertID:  "expert-1",
		Status:    models.BookingStatusConfirmed,
		StartTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
	}
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{overlapping: []models.Booking{booked}},
	}

	resp, err := svc.GetDailyAvailability(context.Background(), "expert-1", "2025-03-10", "svc-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "11:00"}, resp.AvailableSlots)
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available, "slot overlapping a confirmed booking is blocked")
	assert.True(t, resp.Slots[2].Available)
}

func TestGetDailyAvailabilityDefaultService(t *testing.T) {
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{},
	}

	resp, err := svc.GetDailyAvailability(context.Background(), "expert-1", "2025-03-10", "")
	require.NoError(t, err)
	assert.Equal(t, 60, resp.Duration)
}

func TestGetDailyAvailabilityUnknownService(t *testing.T) {
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{},
	}

	_, err := svc.GetDailyAvailability(context.Background(), "expert-1", "2025-03-10", "svc-missing")
	assert.Error(t, err)
}

func TestGetDailyAvailabilityBadDate(t *testing.T) {
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{},
	}

	_, err := svc.GetDailyAvailability(context.Background(), "expert-1", "March 10th", "svc-1")
	assert.Error(t, err)
}

func TestGetDailyAvailabilityOffDayIsEmptyNotError(t *testing.T) {
	svc := &availability.DefaultService{
		ExpertRepo:  &stubExpertRepo{expert: availabilityExpert()},
		BookingRepo: &stubBookingRepo{},
	}

	// 2025-03-11 is a Tuesday; the expert only has a Monday rule.
	resp, err := svc.GetDailyAvailability(context.Background(), "expert-1", "2025-03-11", "svc-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.AvailableSlots)
}
