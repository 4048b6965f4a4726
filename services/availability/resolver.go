package availability

import (
	"fmt"
	"time"

	"consultly/models"
)

// ruleForWeekday returns the first rule matching the weekday. When an
// expert profile carries duplicate rules for the same weekday the first
// one wins; later entries are ignored.
func ruleForWeekday(rules []models.AvailabilityRule, day time.Weekday) (models.AvailabilityRule, bool) {
	for _, rule := range rules {
		if rule.DayOfWeek == int(day) {
			return rule, true
		}
	}
	return models.AvailabilityRule{}, false
}

// Resolve maps an expert's weekly availability rules, a target date and a
// selected service onto the ordered sequence of bookable slots for that
// date. A missing rule or an unavailable weekday yields an empty sequence,
// not an error. The service duration must be positive; callers validate
// before resolving.
//
// Slots are emitted from the window start, each of the service's duration,
// with the rule's buffer enforced between consecutive slots. A final slot
// that would run past the window end is dropped. The function is pure: no
// clock access, deterministic for identical inputs.
func Resolve(rules []models.AvailabilityRule, date time.Time, svc models.ExpertService) ([]models.TimeSlot, error) {
	rule, ok := ruleForWeekday(rules, date.Weekday())
	if !ok || !rule.IsAvailable {
		return nil, nil
	}

	windowStart, err := combine(date, rule.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid rule start time %q: %w", rule.StartTime, err)
	}
	windowEnd, err := combine(date, rule.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid rule end time %q: %w", rule.EndTime, err)
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	step := duration + time.Duration(rule.BufferMinutes)*time.Minute

	var slots []models.TimeSlot
	for cursor := windowStart; !cursor.Add(duration).After(windowEnd); cursor = cursor.Add(step) {
		slots = append(slots, models.TimeSlot{
			ID:              slotID(cursor),
			StartTime:       cursor.Format(models.SlotTimeLayout),
			EndTime:         cursor.Add(duration).Format(models.SlotTimeLayout),
			DurationMinutes: svc.DurationMinutes,
			Available:       true,
			Price:           svc.Price,
			Currency:        svc.Currency,
			BufferBefore:    rule.BufferMinutes,
			BufferAfter:     rule.BufferMinutes,
		})
	}
	return slots, nil
}

// slotID derives the "{date}-{hour}-{minute}" identifier. Unique only
// within one resolver invocation, never across experts.
func slotID(start time.Time) string {
	return fmt.Sprintf("%s-%02d-%02d", start.Format(models.DateLayout), start.Hour(), start.Minute())
}

// combine anchors a "HH:MM" rule time onto the target date, in the date's
// location.
func combine(date time.Time, ruleTime string) (time.Time, error) {
	t, err := time.Parse(models.RuleTimeLayout, ruleTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
