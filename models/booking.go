package models

import "time"

// Booking status lifecycle: pending -> confirmed -> (completed | cancelled | rescheduled).
// The server is authoritative; clients only request cancel/reschedule.
const (
	BookingStatusPending     = "pending"
	BookingStatusConfirmed   = "confirmed"
	BookingStatusCompleted   = "completed"
	BookingStatusCancelled   = "cancelled"
	BookingStatusRescheduled = "rescheduled"
)

// Payment status values recorded on a booking.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

// Location types a client can choose during the details step.
const (
	LocationOnline   = "online"
	LocationInPerson = "in-person"
)

// BookingPayment is the payment record embedded in a booking.
type BookingPayment struct {
	Amount        float64 `bson:"amount" json:"amount"`
	Currency      string  `bson:"currency" json:"currency"`
	Status        string  `bson:"status" json:"status"`
	TransactionID string  `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// BookingCancellation records who cancelled a booking and why.
type BookingCancellation struct {
	Reason      string    `bson:"reason" json:"reason"`
	CancelledBy string    `bson:"cancelledBy" json:"cancelledBy"`
	CancelledAt time.Time `bson:"cancelledAt" json:"cancelledAt"`
}

// BookingReschedule preserves the original times of a rescheduled booking.
type BookingReschedule struct {
	RequestedBy       string    `bson:"requestedBy" json:"requestedBy"`
	RequestedAt       time.Time `bson:"requestedAt" json:"requestedAt"`
	OriginalStartTime time.Time `bson:"originalStartTime" json:"originalStartTime"`
	OriginalEndTime   time.Time `bson:"originalEndTime" json:"originalEndTime"`
}

// Booking is the server-owned record created when a workflow commits.
type Booking struct {
	ID           string               `bson:"id" json:"id"`
	ExpertID     string               `bson:"expertId" json:"expertId"`
	ClientID     string               `bson:"clientId" json:"clientId"`
	ServiceID    string               `bson:"serviceId" json:"serviceId"`
	Status       string               `bson:"status" json:"status"`
	StartTime    time.Time            `bson:"startTime" json:"startTime"`
	EndTime      time.Time            `bson:"endTime" json:"endTime"`
	Duration     int                  `bson:"duration" json:"duration"`
	Timezone     string               `bson:"timezone" json:"timezone"`
	LocationType string               `bson:"locationType" json:"locationType"`
	Participants int                  `bson:"participants" json:"participants"`
	Notes        string               `bson:"notes,omitempty" json:"notes,omitempty"`
	Payment      BookingPayment       `bson:"payment" json:"payment"`
	Cancellation *BookingCancellation `bson:"cancellation,omitempty" json:"cancellation,omitempty"`
	Rescheduling *BookingReschedule   `bson:"rescheduling,omitempty" json:"rescheduling,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// BookingFilter captures booking list query parameters.
type BookingFilter struct {
	Status   string `form:"status"`
	ExpertID string `form:"expertId"`
	ClientID string `form:"clientId"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// CreateBookingRequest is the direct POST /api/bookings payload, matching
// what the booking workflow commits internally.
type CreateBookingRequest struct {
	ExpertID     string `json:"expertId" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"` // SlotTimeLayout
	EndTime      string `json:"endTime" binding:"required"`
	Participants int    `json:"participants" binding:"required,min=1"`
	LocationType string `json:"location" binding:"required,oneof=online in-person"`
	Notes        string `json:"notes,omitempty"`
}

// RescheduleRequest moves a booking to a new slot.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"` // DateLayout
	Time string `json:"time" binding:"required"` // "HH:MM"
}

// CancelRequest carries the cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}
