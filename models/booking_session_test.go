package models_test

import (
	"testing"

	"consultly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() models.ExpertService {
	return models.ExpertService{
		ID:              "svc-1",
		Name:            "Consultation",
		DurationMinutes: 60,
		Price:           80,
		Currency:        "USD",
		MaxParticipants: 3,
		IsActive:        true,
	}
}

func testSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: "2025-03-10-09-00", StartTime: "2025-03-10T09:00:00", EndTime: "2025-03-10T10:00:00", DurationMinutes: 60, Available: true, Price: 80, Currency: "USD"},
		{ID: "2025-03-10-10-15", StartTime: "2025-03-10T10:15:00", EndTime: "2025-03-10T11:15:00", DurationMinutes: 60, Available: true, Price: 80, Currency: "USD"},
	}
}

// advance drives a fresh session up to the named step.
func advance(t *testing.T, step string) *models.BookingSession {
	t.Helper()
	s := models.NewBookingSession("sess-1", "client-1", "expert-1")
	if step == models.StepService {
		return s
	}
	require.NoError(t, s.SelectService(testService()))
	if step == models.StepDate {
		return s
	}
	require.NoError(t, s.SelectDate("2025-03-10", testSlots()))
	require.NoError(t, s.SelectSlot("2025-03-10-09-00"))
	if step == models.StepDetails {
		return s
	}
	require.NoError(t, s.SetDetails(1, models.LocationOnline, ""))
	if step == models.StepPayment {
		return s
	}
	require.NoError(t, s.MarkConfirmed())
	return s
}

func TestSessionHappyPath(t *testing.T) {
	s := models.NewBookingSession("sess-1", "client-1", "expert-1")
	assert.Equal(t, models.StepService, s.Step)

	require.NoError(t, s.SelectService(testService()))
	assert.Equal(t, models.StepDate, s.Step)

	require.NoError(t, s.SelectDate("2025-03-10", testSlots()))
	assert.Equal(t, models.StepDate, s.Step, "date selection recomputes slots without advancing")
	assert.Len(t, s.Availability, 2)

	require.NoError(t, s.SelectSlot("2025-03-10-10-15"))
	assert.Equal(t, models.StepDetails, s.Step)
	require.NotNil(t, s.Draft.Slot)
	assert.Equal(t, "2025-03-10-10-15", s.Draft.Slot.ID)

	require.NoError(t, s.SetDetails(2, models.LocationInPerson, "bring contracts"))
	assert.Equal(t, models.StepPayment, s.Step)

	require.NoError(t, s.MarkConfirmed())
	assert.Equal(t, models.StepConfirmation, s.Step)
}

func TestSelectServiceRejectsNonPositiveDuration(t *testing.T) {
	s := models.NewBookingSession("sess-1", "client-1", "expert-1")
	svc := testService()
	svc.DurationMinutes = 0

	err := s.SelectService(svc)
	assert.Error(t, err)
	assert.Equal(t, models.StepService, s.Step)
}

func TestSelectServiceDiscardsStaleSlots(t *testing.T) {
	s := advance(t, models.StepDetails)
	require.NoError(t, s.Back()) // details -> date
	require.NoError(t, s.Back()) // date -> service

	shorter := testService()
	shorter.ID = "svc-2"
	shorter.DurationMinutes = 30
	require.NoError(t, s.SelectService(shorter))

	assert.Nil(t, s.Draft.Slot)
	assert.Empty(t, s.Availability, "slots computed for the old duration must not survive")
}

func TestSelectDateDropsPriorSlotChoice(t *testing.T) {
	s := advance(t, models.StepDetails)
	require.NoError(t, s.Back()) // back to date, slot cleared

	require.NoError(t, s.SelectDate("2025-03-11", nil))
	assert.Nil(t, s.Draft.Slot)
	assert.Empty(t, s.Availability)

	// With no slots for the new date, selection cannot proceed.
	err := s.SelectSlot("2025-03-11-09-00")
	assert.ErrorIs(t, err, models.ErrSlotNotInOffer)
	assert.Equal(t, models.StepDate, s.Step)
}

func TestSelectDateRejectsMalformedDate(t *testing.T) {
	s := advance(t, models.StepDate)
	assert.Error(t, s.SelectDate("10/03/2025", nil))
}

func TestSelectSlotNotInOffer(t *testing.T) {
	s := advance(t, models.StepDate)
	require.NoError(t, s.SelectDate("2025-03-10", testSlots()))

	err := s.SelectSlot("2025-03-10-23-00")
	assert.ErrorIs(t, err, models.ErrSlotNotInOffer)
}

func TestSetDetailsValidation(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		location     string
		wantErr      error
	}{
		{"zero participants", 0, models.LocationOnline, models.ErrInvalidParticipant},
		{"too many participants", 4, models.LocationOnline, models.ErrInvalidParticipant},
		{"bad location", 1, "telepathy", models.ErrInvalidLocation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := advance(t, models.StepDetails)
			err := s.SetDetails(tt.participants, tt.location, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.StepDetails, s.Step)
		})
	}
}

func TestWrongStepTransitionsRejected(t *testing.T) {
	s := advance(t, models.StepService)
	assert.ErrorIs(t, s.SelectDate("2025-03-10", nil), models.ErrWrongStep)
	assert.ErrorIs(t, s.SelectSlot("any"), models.ErrWrongStep)
	assert.ErrorIs(t, s.SetDetails(1, models.LocationOnline, ""), models.ErrWrongStep)
	assert.ErrorIs(t, s.MarkConfirmed(), models.ErrWrongStep)
}

func TestBackNavigation(t *testing.T) {
	s := advance(t, models.StepPayment)

	require.NoError(t, s.Back())
	assert.Equal(t, models.StepDetails, s.Step)
	assert.NotNil(t, s.Draft.Slot, "going back to details keeps the chosen slot")

	require.NoError(t, s.Back())
	assert.Equal(t, models.StepDate, s.Step)
	assert.Nil(t, s.Draft.Slot, "leaving details discards the chosen slot")

	require.NoError(t, s.Back())
	assert.Equal(t, models.StepService, s.Step)

	err := s.Back()
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestConfirmationIsTerminal(t *testing.T) {
	s := advance(t, models.StepConfirmation)

	assert.ErrorIs(t, s.Back(), models.ErrSessionTerminal)
	assert.ErrorIs(t, s.SelectService(testService()), models.ErrSessionTerminal)
	assert.ErrorIs(t, s.MarkConfirmed(), models.ErrWrongStep)
}
