package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consultly/config"
	"consultly/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload in an asynq task scheduled for
// fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues consultation reminders ahead of the
// booking's start time.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleReminder queues a reminder for the booking's client, fired
// ReminderLeadMinutes before the consultation starts. Bookings starting
// inside the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, booking *models.Booking) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := booking.StartTime.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		BookingID:  booking.ID,
		UserID:     booking.ClientID,
		FireDate:   fireAt.Format(time.RFC3339),
		Title:      "Upcoming consultation",
		Body:       fmt.Sprintf("Your consultation starts at %s.", booking.StartTime.Format("15:04 on Jan 2")),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
