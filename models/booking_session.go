package models

import (
	"errors"
	"fmt"
	"time"
)

// Workflow steps, in order. Backward navigation is allowed from every step
// except confirmation, which is terminal.
const (
	StepService      = "service"
	StepDate         = "date"
	StepDetails      = "details"
	StepPayment      = "payment"
	StepConfirmation = "confirmation"
)

var (
	ErrWrongStep          = errors.New("operation not valid in current workflow step")
	ErrSessionTerminal    = errors.New("booking session already confirmed")
	ErrSlotNotInOffer     = errors.New("selected slot is not in the computed availability")
	ErrInvalidLocation    = errors.New("location must be online or in-person")
	ErrInvalidParticipant = errors.New("participant count out of range for the selected service")
)

// BookingDraft is the transient aggregate a workflow accumulates across
// steps. It is discarded when the session is cancelled and promoted into a
// Booking on successful confirmation.
type BookingDraft struct {
	Service      *ExpertService `json:"service,omitempty"`
	Date         string         `json:"date,omitempty"` // DateLayout
	Slot         *TimeSlot      `json:"slot,omitempty"`
	Participants int            `json:"participants,omitempty"`
	LocationType string         `json:"location,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// BookingSession holds the state of one in-flight booking workflow. It is
// exclusively owned by a single workflow instance; no two instances share
// a session.
type BookingSession struct {
	SessionID    string       `json:"sessionId"`
	ClientID     string       `json:"clientId"`
	ExpertID     string       `json:"expertId"`
	Step         string       `json:"step"`
	Draft        BookingDraft `json:"draft"`
	Availability []TimeSlot   `json:"availability,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewBookingSession starts a workflow at the service-selection step.
func NewBookingSession(sessionID, clientID, expertID string) *BookingSession {
	now := time.Now()
	return &BookingSession{
		SessionID: sessionID,
		ClientID:  clientID,
		ExpertID:  expertID,
		Step:      StepService,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectService records the chosen service and advances to date selection.
// Any previously computed slots belong to the old service's duration and
// are discarded.
func (s *BookingSession) SelectService(svc ExpertService) error {
	if s.Step == StepConfirmation {
		return ErrSessionTerminal
	}
	if s.Step != StepService {
		return fmt.Errorf("%w: select service from %q", ErrWrongStep, s.Step)
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service %q has non-positive duration", svc.ID)
	}
	s.Draft.Service = &svc
	s.Draft.Slot = nil
	s.Availability = nil
	s.Step = StepDate
	s.touch()
	return nil
}

// SelectDate records the target date while staying on the date step; the
// caller recomputes availability for it. Slots computed for a previous
// date are stale and dropped.
func (s *BookingSession) SelectDate(date string, slots []TimeSlot) error {
	if s.Step != StepDate {
		return fmt.Errorf("%w: select date from %q", ErrWrongStep, s.Step)
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	s.Draft.Date = date
	s.Draft.Slot = nil
	s.Availability = slots
	s.touch()
	return nil
}

// SelectSlot picks one of the computed slots and advances to details. An
// empty availability keeps the session on the date step, so this can only
// succeed with a slot the resolver actually produced.
func (s *BookingSession) SelectSlot(slotID string) error {
	if s.Step != StepDate {
		return fmt.Errorf("%w: select slot from %q", ErrWrongStep, s.Step)
	}
	for i := range s.Availability {
		if s.Availability[i].ID == slotID {
			slot := s.Availability[i]
			s.Draft.Slot = &slot
			s.Step = StepDetails
			s.touch()
			return nil
		}
	}
	return ErrSlotNotInOffer
}

// SetDetails validates participants and location and advances to payment.
func (s *BookingSession) SetDetails(participants int, locationType, notes string) error {
	if s.Step != StepDetails {
		return fmt.Errorf("%w: set details from %q", ErrWrongStep, s.Step)
	}
	if locationType != LocationOnline && locationType != LocationInPerson {
		return ErrInvalidLocation
	}
	maxParticipants := 1
	if s.Draft.Service != nil && s.Draft.Service.MaxParticipants > 0 {
		maxParticipants = s.Draft.Service.MaxParticipants
	}
	if participants < 1 || participants > maxParticipants {
		return fmt.Errorf("%w: got %d, allowed 1-%d", ErrInvalidParticipant, participants, maxParticipants)
	}
	s.Draft.Participants = participants
	s.Draft.LocationType = locationType
	s.Draft.Notes = notes
	s.Step = StepPayment
	s.touch()
	return nil
}

// MarkConfirmed moves payment -> confirmation. Only called after the
// booking-creation side effect succeeded; a failed creation leaves the
// session on payment with the draft intact.
func (s *BookingSession) MarkConfirmed() error {
	if s.Step != StepPayment {
		return fmt.Errorf("%w: confirm from %q", ErrWrongStep, s.Step)
	}
	s.Step = StepConfirmation
	s.touch()
	return nil
}

// Back navigates one step backwards. Confirmation is terminal: the only
// way out is closing the workflow and starting a new session.
func (s *BookingSession) Back() error {
	switch s.Step {
	case StepService:
		return fmt.Errorf("%w: already at first step", ErrWrongStep)
	case StepDate:
		s.Step = StepService
	case StepDetails:
		s.Draft.Slot = nil
		s.Step = StepDate
	case StepPayment:
		s.Step = StepDetails
	case StepConfirmation:
		return ErrSessionTerminal
	default:
		return fmt.Errorf("unknown workflow step %q", s.Step)
	}
	s.touch()
	return nil
}

func (s *BookingSession) touch() {
	s.UpdatedAt = time.Now()
}
