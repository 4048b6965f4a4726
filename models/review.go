package models

import "time"

// Review is a client's rating of an expert after a consultation.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	ExpertID  string    `bson:"expertId" json:"expertId"`
	ClientID  string    `bson:"clientId" json:"clientId"`
	BookingID string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateReviewRequest is the POST /api/experts/:id/reviews payload.
type CreateReviewRequest struct {
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
}
