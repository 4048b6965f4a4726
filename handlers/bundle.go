// File: handlers/bundle.go
package handlers

import (
	"errors"
	"net/http"

	userRepoPkg "consultly/database/repository/user"
	"consultly/models"
	"consultly/services/availability"
	"consultly/services/booking"
	"consultly/services/events"
	"consultly/services/expert"
	"consultly/services/review"
	"consultly/services/user"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups the endpoint handlers and their service dependencies.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth     user.AuthService
	Experts  expert.ExpertService
	Avail    availability.Service
	Sessions booking.SessionService
	Bookings booking.Service
	Reviews  review.Service
	Hub      *events.Hub
}

func getLogger() *zap.Logger {
	return utils.GetLogger()
}

// currentUserID reads the identity set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// writeServiceError maps typed workflow errors onto HTTP statuses; anything
// untyped is a 500.
func writeServiceError(c *gin.Context, err error) {
	var wfErr *booking.WorkflowError
	if errors.As(err, &wfErr) {
		status := http.StatusInternalServerError
		switch wfErr.Code {
		case "forbidden":
			status = http.StatusForbidden
		case "invalidState":
			status = http.StatusConflict
		case "paymentError":
			status = http.StatusPaymentRequired
		}
		c.JSON(status, gin.H{"error": wfErr.Message, "code": wfErr.Code})
		return
	}
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	switch {
	case errors.Is(err, models.ErrWrongStep),
		errors.Is(err, models.ErrSessionTerminal),
		errors.Is(err, models.ErrSlotNotInOffer):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, models.ErrInvalidLocation),
		errors.Is(err, models.ErrInvalidParticipant):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	getLogger().Error("request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "request failed", err.Error())
}
