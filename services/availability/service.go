package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "consultly/database/repository/booking"
	expertRepo "consultly/database/repository/expert"
	"consultly/models"
	"consultly/utils"

	"go.uber.org/zap"
)

// Service computes bookable slots for an expert on a given date.
type Service interface {
	GetDailyAvailability(ctx context.Context, expertID, date, serviceID string) (*models.AvailabilityResponse, error)
}

// DefaultService resolves slots from the expert's weekly rules and marks
// those colliding with existing bookings as unavailable. The resolver
// itself stays pure; booking collisions are applied on top here.
type DefaultService struct {
	ExpertRepo  expertRepo.ExpertRepository
	BookingRepo bookingRepo.BookingRepository
}

func (s *DefaultService) GetDailyAvailability(ctx context.Context, expertID, date, serviceID string) (*models.AvailabilityResponse, error) {
	expert, err := s.ExpertRepo.GetByID(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expert %s: %w", expertID, err)
	}

	var svc models.ExpertService
	if serviceID != "" {
		found := false
		if svc, found = expert.ServiceByID(serviceID); !found {
			return nil, fmt.Errorf("expert %s has no service %s", expertID, serviceID)
		}
	} else {
		found := false
		if svc, found = expert.DefaultService(); !found {
			return nil, fmt.Errorf("expert %s has no services configured", expertID)
		}
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service %s has non-positive duration", svc.ID)
	}

	loc, err := time.LoadLocation(expert.Timezone)
	if err != nil {
		utils.GetLogger().Warn("invalid expert timezone, falling back to UTC",
			zap.String("expertID", expertID), zap.String("timezone", expert.Timezone))
		loc = time.UTC
	}
	day, err := time.ParseInLocation(models.DateLayout, date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	slots, err := Resolve(expert.Availability, day, svc)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability: %w", err)
	}

	if len(slots) > 0 {
		if err := s.applyBookingCollisions(ctx, expertID, day, loc, slots); err != nil {
			// Collision data is advisory; serve rule-derived slots anyway.
			utils.GetLogger().Error("failed to apply booking collisions",
				zap.String("expertID", expertID), zap.Error(err))
		}
	}

	resp := &models.AvailabilityResponse{
		Slots:          slots,
		Timezone:       expert.Timezone,
		Duration:       svc.DurationMinutes,
		AvailableSlots: []string{},
	}
	for _, slot := range slots {
		if !slot.Available {
			continue
		}
		start, err := time.ParseInLocation(models.SlotTimeLayout, slot.StartTime, loc)
		if err != nil {
			continue
		}
		resp.AvailableSlots = append(resp.AvailableSlots, start.Format(models.RuleTimeLayout))
	}
	return resp, nil
}

// applyBookingCollisions flags slots that intersect pending or confirmed
// bookings for the same expert.
func (s *DefaultService) applyBookingCollisions(ctx context.Context, expertID string, day time.Time, loc *time.Location, slots []models.TimeSlot) error {
	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)
	booked, err := s.BookingRepo.ListOverlapping(ctx, expertID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if len(booked) == 0 {
		return nil
	}

	for i := range slots {
		start, err := time.ParseInLocation(models.SlotTimeLayout, slots[i].StartTime, loc)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(models.SlotTimeLayout, slots[i].EndTime, loc)
		if err != nil {
			continue
		}
		for _, b := range booked {
			if start.Before(b.EndTime) && b.StartTime.Before(end) {
				slots[i].Available = false
				break
			}
		}
	}
	return nil
}
