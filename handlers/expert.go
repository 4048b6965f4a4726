package handlers

import (
	"net/http"
	"strings"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListExpertsHandler returns experts matching the query filters.
func (hb *HandlerBundle) ListExpertsHandler(c *gin.Context) {
	var filter models.ExpertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	experts, total, err := hb.Experts.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list experts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"experts": experts, "total": total})
}

// ListFeaturedExpertsHandler returns the featured experts for the landing view.
func (hb *HandlerBundle) ListFeaturedExpertsHandler(c *gin.Context) {
	experts, err := hb.Experts.ListFeatured(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list featured experts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"experts": experts})
}

// GetExpertHandler returns one expert profile.
func (hb *HandlerBundle) GetExpertHandler(c *gin.Context) {
	expert, err := hb.Experts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expert not found"})
		return
	}
	c.JSON(http.StatusOK, expert)
}

// GetAvailabilityHandler computes the expert's bookable slots for one date.
// Query params: date (required, "2006-01-02"), serviceId (optional; the
// expert's default service is used when omitted).
func (hb *HandlerBundle) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	resp, err := hb.Avail.GetDailyAvailability(c.Request.Context(), c.Param("id"), date, c.Query("serviceId"))
	if err != nil {
		if strings.Contains(err.Error(), "invalid date") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger().Error("Failed to compute availability",
			zap.String("expertID", c.Param("id")), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAvailabilityHandler replaces the expert's weekly rules.
func (hb *HandlerBundle) UpdateAvailabilityHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	expert, err := hb.Experts.UpdateAvailability(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		if strings.Contains(err.Error(), "does not own") {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, expert)
}

// UpdateStatusHandler changes the expert's presence status.
func (hb *HandlerBundle) UpdateStatusHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=active away busy offline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.Experts.UpdateStatus(c.Request.Context(), c.Param("id"), userID, req.Status); err != nil {
		if strings.Contains(err.Error(), "does not own") {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
