// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"time"

	"consultly/models"
	"consultly/services/events"
	"consultly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession starts a workflow against one expert at the
// service-selection step and persists it.
func (s *DefaultSessionService) InitiateSession(ctx context.Context, clientID, expertID string) (*models.BookingSession, error) {
	if _, err := s.ExpertRepo.GetByID(ctx, expertID); err != nil {
		return nil, fmt.Errorf("expert %s not found: %w", expertID, err)
	}

	session := models.NewBookingSession(uuid.New().String(), clientID, expertID)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession applies one workflow action. Every transition mutates only
// the stored draft; nothing outside the session changes until confirmation.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, clientID, sessionID string, req models.SessionUpdateRequest) (*models.BookingSession, error) {
	session, err := s.ownedSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case models.ActionSelectService:
		expert, err := s.ExpertRepo.GetByID(ctx, session.ExpertID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch expert: %w", err)
		}
		svc, found := expert.ServiceByID(req.ServiceID)
		if !found {
			return nil, NewStateError(fmt.Sprintf("expert has no service %q", req.ServiceID))
		}
		if !svc.IsActive {
			return nil, NewStateError(fmt.Sprintf("service %q is not bookable", req.ServiceID))
		}
		if err := session.SelectService(svc); err != nil {
			return nil, err
		}

	case models.ActionSelectDate:
		if session.Draft.Service == nil {
			return nil, NewStateError("no service selected")
		}
		avail, err := s.Avail.GetDailyAvailability(ctx, session.ExpertID, req.Date, session.Draft.Service.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute availability: %w", err)
		}
		// Zero slots is not an error: the session stays on the date step
		// and the client shows an empty state.
		if err := session.SelectDate(req.Date, avail.Slots); err != nil {
			return nil, err
		}

	case models.ActionSelectSlot:
		if err := session.SelectSlot(req.SlotID); err != nil {
			return nil, err
		}

	case models.ActionSetDetails:
		if err := session.SetDetails(req.Participants, req.LocationType, req.Notes); err != nil {
			return nil, err
		}

	case models.ActionBack:
		if err := session.Back(); err != nil {
			return nil, err
		}

	default:
		return nil, NewStateError(fmt.Sprintf("unknown action %q", req.Action))
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking performs the single side-effecting transition of the
// workflow: charge, create the booking record, publish the created event
// and schedule a reminder. On payment or persistence failure the session
// stays on the payment step with its draft intact so the client can retry
// without re-entering details. There is no resubmission guard: confirming
// the same draft twice in quick succession can double-book.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, clientID, sessionID string) (*models.Booking, error) {
	session, err := s.ownedSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, NewStateError(fmt.Sprintf("cannot confirm from step %q", session.Step))
	}
	draft := session.Draft
	if draft.Service == nil || draft.Slot == nil {
		return nil, NewStateError("incomplete booking draft")
	}

	expert, err := s.ExpertRepo.GetByID(ctx, session.ExpertID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expert: %w", err)
	}
	loc, err := time.LoadLocation(expert.Timezone)
	if err != nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(models.SlotTimeLayout, draft.Slot.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid slot start time: %w", err)
	}
	end, err := time.ParseInLocation(models.SlotTimeLayout, draft.Slot.EndTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid slot end time: %w", err)
	}

	invoice, err := s.Payment.ProcessPayment(ctx, models.PaymentRequest{
		ClientID: clientID,
		Amount:   draft.Slot.Price,
		Currency: draft.Slot.Currency,
	})
	if err != nil {
		// Draft retained; the user resubmits from the payment step.
		return nil, err
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		ExpertID:     session.ExpertID,
		ClientID:     clientID,
		ServiceID:    draft.Service.ID,
		Status:       models.BookingStatusConfirmed,
		StartTime:    start,
		EndTime:      end,
		Duration:     draft.Slot.DurationMinutes,
		Timezone:     expert.Timezone,
		LocationType: draft.LocationType,
		Participants: draft.Participants,
		Notes:        draft.Notes,
		Payment: models.BookingPayment{
			Amount:        invoice.Amount,
			Currency:      invoice.Currency,
			Status:        models.PaymentStatusPaid,
			TransactionID: invoice.PaymentID,
		},
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := session.MarkConfirmed(); err != nil {
		utils.GetLogger().Warn("session already past payment step", zap.String("sessionID", sessionID), zap.Error(err))
	}
	// Terminal: the draft is not usable afterwards, a second booking needs
	// a fresh session.
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Error("failed to delete confirmed session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	if s.Events != nil {
		s.Events.Publish(events.KindBookingCreated, booking)
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, booking); err != nil {
			utils.GetLogger().Error("failed to schedule reminder", zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

// CancelSession discards a workflow and its draft.
func (s *DefaultSessionService) CancelSession(ctx context.Context, clientID, sessionID string) error {
	if _, err := s.ownedSession(ctx, clientID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

// ownedSession loads a session and verifies the caller owns it.
func (s *DefaultSessionService) ownedSession(ctx context.Context, clientID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ClientID != clientID {
		return nil, NewForbiddenError("session belongs to another client")
	}
	return session, nil
}

// ReminderScheduler enqueues a consultation reminder for a booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.Booking) error
}
