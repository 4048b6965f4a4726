package handlers

import (
	"net/http"

	"consultly/models"

	"github.com/gin-gonic/gin"
)

// InitiateSessionHandler starts a booking workflow against one expert.
func (hb *HandlerBundle) InitiateSessionHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.InitiateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Sessions.InitiateSession(c.Request.Context(), clientID, req.ExpertID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSessionHandler applies one workflow action to a session.
func (hb *HandlerBundle) UpdateSessionHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.SessionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Sessions.UpdateSession(c.Request.Context(), clientID, c.Param("sessionID"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBookingHandler commits the workflow: charges and creates the booking.
func (hb *HandlerBundle) ConfirmBookingHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	booking, err := hb.Sessions.ConfirmBooking(c.Request.Context(), clientID, c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelSessionHandler discards an in-flight workflow and its draft.
func (hb *HandlerBundle) CancelSessionHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := hb.Sessions.CancelSession(c.Request.Context(), clientID, c.Param("sessionID")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CreateBookingHandler commits a booking directly, outside the workflow.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	clientID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := hb.Bookings.Create(c.Request.Context(), clientID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler returns one booking; only its client or expert may read it.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	booking, err := hb.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookingsHandler lists the caller's bookings. Experts pass expertId to
// see their schedule; clients default to their own bookings.
func (hb *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if filter.ExpertID == "" {
		filter.ClientID = userID
	}

	bookings, total, err := hb.Bookings.List(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": total})
}

// CancelBookingHandler cancels a committed booking.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := hb.Bookings.Cancel(c.Request.Context(), c.Param("id"), userID, req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// RescheduleBookingHandler moves a committed booking to a new slot.
func (hb *HandlerBundle) RescheduleBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := hb.Bookings.Reschedule(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
