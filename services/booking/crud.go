// File: services/booking/crud.go
package booking

import (
	"context"
	"fmt"
	"time"

	"consultly/models"
	"consultly/services/events"
)

// Create commits a booking directly, applying the same validation the
// workflow's payment step does: the requested interval must be a slot the
// resolver currently offers. Payment stays pending until charged; like
// the workflow path there is no resubmission guard, so identical repeated
// requests each create a booking.
func (s *DefaultBookingService) Create(ctx context.Context, clientID string, req models.CreateBookingRequest) (*models.Booking, error) {
	expert, err := s.ExpertRepo.GetByID(ctx, req.ExpertID)
	if err != nil {
		return nil, fmt.Errorf("expert %s not found: %w", req.ExpertID, err)
	}
	svc, found := expert.ServiceByID(req.ServiceID)
	if !found {
		return nil, NewStateError(fmt.Sprintf("expert has no service %q", req.ServiceID))
	}
	maxParticipants := svc.MaxParticipants
	if maxParticipants <= 0 {
		maxParticipants = 1
	}
	if req.Participants < 1 || req.Participants > maxParticipants {
		return nil, NewStateError(fmt.Sprintf("participants must be 1-%d", maxParticipants))
	}

	loc, err := time.LoadLocation(expert.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(models.SlotTimeLayout, req.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", req.StartTime, err)
	}
	end, err := time.ParseInLocation(models.SlotTimeLayout, req.EndTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", req.EndTime, err)
	}

	if err := s.requireOfferedSlot(ctx, req.ExpertID, svc.ID, start, end, loc); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ExpertID:     req.ExpertID,
		ClientID:     clientID,
		ServiceID:    svc.ID,
		Status:       models.BookingStatusPending,
		StartTime:    start,
		EndTime:      end,
		Duration:     svc.DurationMinutes,
		Timezone:     expert.Timezone,
		LocationType: req.LocationType,
		Participants: req.Participants,
		Notes:        req.Notes,
		Payment: models.BookingPayment{
			Amount:   svc.Price,
			Currency: svc.Currency,
			Status:   models.PaymentStatusPending,
		},
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Events != nil {
		s.Events.Publish(events.KindBookingCreated, booking)
	}
	return booking, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error) {
	return s.Repo.List(ctx, filter)
}

// Cancel transitions pending/confirmed -> cancelled on behalf of the
// booking's client or expert.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, actorID, reason string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParty(ctx, booking, actorID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, NewStateError(fmt.Sprintf("cannot cancel a %s booking", booking.Status))
	}

	booking.Status = models.BookingStatusCancelled
	booking.Cancellation = &models.BookingCancellation{
		Reason:      reason,
		CancelledBy: actorID,
		CancelledAt: time.Now(),
	}
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if s.Events != nil {
		s.Events.Publish(events.KindBookingCancelled, booking.ID)
	}
	return booking, nil
}

// Reschedule moves a pending/confirmed booking to a new slot. The new
// interval is validated against the expert's current rules through the
// resolver; original times are preserved on the record.
func (s *DefaultBookingService) Reschedule(ctx context.Context, bookingID, actorID string, req models.RescheduleRequest) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParty(ctx, booking, actorID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, NewStateError(fmt.Sprintf("cannot reschedule a %s booking", booking.Status))
	}

	avail, err := s.Avail.GetDailyAvailability(ctx, booking.ExpertID, req.Date, booking.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	loc, err := time.LoadLocation(booking.Timezone)
	if err != nil {
		loc = time.UTC
	}
	var newStart, newEnd time.Time
	found := false
	for _, slot := range avail.Slots {
		start, perr := time.ParseInLocation(models.SlotTimeLayout, slot.StartTime, loc)
		if perr != nil {
			continue
		}
		if slot.Available && start.Format(models.RuleTimeLayout) == req.Time {
			end, perr := time.ParseInLocation(models.SlotTimeLayout, slot.EndTime, loc)
			if perr != nil {
				continue
			}
			newStart, newEnd = start, end
			found = true
			break
		}
	}
	if !found {
		return nil, NewStateError(fmt.Sprintf("no available slot at %s %s", req.Date, req.Time))
	}

	booking.Rescheduling = &models.BookingReschedule{
		RequestedBy:       actorID,
		RequestedAt:       time.Now(),
		OriginalStartTime: booking.StartTime,
		OriginalEndTime:   booking.EndTime,
	}
	booking.StartTime = newStart
	booking.EndTime = newEnd
	booking.Status = models.BookingStatusRescheduled
	if err := s.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}

	if s.Events != nil {
		s.Events.Publish(events.KindBookingUpdated, booking)
	}
	return booking, nil
}

// requireOfferedSlot checks that the requested interval matches an
// available slot for the date, start and end both; malformed or made-up
// intervals never reach the store. An interval whose end overruns the
// matched slot would block neighbouring slots through the overlap query,
// so it is rejected even when the start lines up.
func (s *DefaultBookingService) requireOfferedSlot(ctx context.Context, expertID, serviceID string, start, end time.Time, loc *time.Location) error {
	avail, err := s.Avail.GetDailyAvailability(ctx, expertID, start.Format(models.DateLayout), serviceID)
	if err != nil {
		return fmt.Errorf("failed to compute availability: %w", err)
	}
	for _, slot := range avail.Slots {
		slotStart, perr := time.ParseInLocation(models.SlotTimeLayout, slot.StartTime, loc)
		if perr != nil {
			continue
		}
		if !slot.Available || !slotStart.Equal(start) {
			continue
		}
		slotEnd, perr := time.ParseInLocation(models.SlotTimeLayout, slot.EndTime, loc)
		if perr != nil {
			continue
		}
		if slotEnd.Equal(end) {
			return nil
		}
		return NewStateError("requested end time does not match the offered slot")
	}
	return NewStateError("requested time is not an offered slot")
}

// requireParty allows only the booking's client or its expert to act.
func (s *DefaultBookingService) requireParty(ctx context.Context, booking *models.Booking, actorID string) error {
	if booking.ClientID == actorID {
		return nil
	}
	expert, err := s.ExpertRepo.GetByID(ctx, booking.ExpertID)
	if err == nil && expert.UserID == actorID {
		return nil
	}
	return NewForbiddenError("only the booking's client or expert may do this")
}
