package booking

import (
	"context"

	bookingRepo "consultly/database/repository/booking"
	expertRepo "consultly/database/repository/expert"
	"consultly/models"
	"consultly/services/availability"
	"consultly/services/events"
)

// SessionService drives the staged booking workflow:
// service -> date -> details -> payment -> confirmation.
type SessionService interface {
	InitiateSession(ctx context.Context, clientID, expertID string) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, clientID, sessionID string, req models.SessionUpdateRequest) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, clientID, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, clientID, sessionID string) error
}

// Service manages committed bookings outside the workflow.
type Service interface {
	Create(ctx context.Context, clientID string, req models.CreateBookingRequest) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, int64, error)
	Cancel(ctx context.Context, bookingID, actorID, reason string) (*models.Booking, error)
	Reschedule(ctx context.Context, bookingID, actorID string, req models.RescheduleRequest) (*models.Booking, error)
}

// DefaultSessionService implements SessionService on top of a session
// store, the availability resolver and the booking service.
type DefaultSessionService struct {
	Store       SessionStore
	ExpertRepo  expertRepo.ExpertRepository
	BookingRepo bookingRepo.BookingRepository
	Payment     PaymentHandler
	Avail       availability.Service
	Events      *events.Hub
	Reminders   ReminderScheduler
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	ExpertRepo expertRepo.ExpertRepository
	Avail      availability.Service
	Events     *events.Hub
}
