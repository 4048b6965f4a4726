package availability_test

import (
	"testing"
	"time"

	"consultly/models"
	"consultly/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func rule(day int, start, end string, buffer int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:            "rule-1",
		DayOfWeek:     day,
		StartTime:     start,
		EndTime:       end,
		IsAvailable:   true,
		BufferMinutes: buffer,
	}
}

func service(durationMinutes int) models.ExpertService {
	return models.ExpertService{
		ID:              "svc-1",
		Name:            "Consultation",
		DurationMinutes: durationMinutes,
		Price:           80,
		Currency:        "USD",
		IsActive:        true,
	}
}

func TestResolveStandardDay(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "17:00", 15)}

	slots, err := availability.Resolve(rules, monday, service(60))
	require.NoError(t, err)
	require.Len(t, slots, 6)

	// Cursor advances by duration + buffer (75 min); the 16:30 slot would
	// end at 17:30 and is dropped.
	wantStarts := []string{"09:00", "10:15", "11:30", "12:45", "14:00", "15:15"}
	for i, slot := range slots {
		start, err := time.Parse(models.SlotTimeLayout, slot.StartTime)
		require.NoError(t, err)
		assert.Equal(t, wantStarts[i], start.Format(models.RuleTimeLayout))
		assert.Equal(t, 60, slot.DurationMinutes)
		assert.True(t, slot.Available)
	}

	last := slots[len(slots)-1]
	end, err := time.Parse(models.SlotTimeLayout, last.EndTime)
	require.NoError(t, err)
	assert.Equal(t, "16:15", end.Format(models.RuleTimeLayout))
}

func TestResolveNoBuffer(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "10:00", 0)}

	slots, err := availability.Resolve(rules, monday, service(30))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "2025-03-10T09:00:00", slots[0].StartTime)
	assert.Equal(t, "2025-03-10T09:30:00", slots[1].StartTime)
	assert.Equal(t, "2025-03-10T10:00:00", slots[1].EndTime)
}

func TestResolveExactFit(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "10:00", 10)}

	slots, err := availability.Resolve(rules, monday, service(60))
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-03-10T10:00:00", slots[0].EndTime)
}

func TestResolveDurationLongerThanWindow(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "09:45", 0)}

	slots, err := availability.Resolve(rules, monday, service(60))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveUnavailableWeekday(t *testing.T) {
	offRule := rule(1, "09:00", "17:00", 0)
	offRule.IsAvailable = false

	slots, err := availability.Resolve([]models.AvailabilityRule{offRule}, monday, service(60))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveNoRuleForWeekday(t *testing.T) {
	// Rule covers Tuesday, requested date is a Monday.
	rules := []models.AvailabilityRule{rule(2, "09:00", "17:00", 0)}

	slots, err := availability.Resolve(rules, monday, service(60))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveFirstMatchingRuleWins(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(1, "09:00", "10:00", 0),
		rule(1, "13:00", "18:00", 0),
	}

	slots, err := availability.Resolve(rules, monday, service(60))
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-03-10T09:00:00", slots[0].StartTime)
}

func TestResolveMalformedRuleTime(t *testing.T) {
	bad := rule(1, "9am", "17:00", 0)

	_, err := availability.Resolve([]models.AvailabilityRule{bad}, monday, service(60))
	assert.Error(t, err)
}

func TestResolveSlotIDFormat(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "09:00", "11:00", 15)}

	slots, err := availability.Resolve(rules, monday, service(45))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "2025-03-10-09-00", slots[0].ID)
	assert.Equal(t, "2025-03-10-10-00", slots[1].ID)
}

func TestResolveDeterministic(t *testing.T) {
	rules := []models.AvailabilityRule{rule(1, "08:30", "12:00", 5)}

	first, err := availability.Resolve(rules, monday, service(25))
	require.NoError(t, err)
	second, err := availability.Resolve(rules, monday, service(25))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
