package handlers

import (
	"errors"
	"net/http"

	"consultly/models"
	"consultly/services/review"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListReviewsHandler returns an expert's reviews, newest first.
func (hb *HandlerBundle) ListReviewsHandler(c *gin.Context) {
	reviews, err := hb.Reviews.ListByExpert(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger().Error("Failed to list reviews",
			zap.String("expertID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", err.Error())
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// CreateReviewHandler submits a review for an expert on behalf of the
// authenticated client.
func (hb *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Reviews.Create(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, review.ErrNoBookingHistory) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		getLogger().Error("Failed to create review",
			zap.String("expertID", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListCategoriesHandler returns the distinct service categories on offer.
func (hb *HandlerBundle) ListCategoriesHandler(c *gin.Context) {
	categories, err := hb.Experts.Categories(c.Request.Context())
	if err != nil {
		getLogger().Error("Failed to list categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
