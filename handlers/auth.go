package handlers

import (
	"errors"
	"net/http"
	"strings"

	"consultly/models"
	"consultly/services/user"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler creates an account and returns it with a token.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Auth.Register(c.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "already registered") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to register", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler verifies credentials and returns the account with a token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.Auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to log in", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the presented token's cached identity so it stops
// validating from the auth cache.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := hb.Auth.Logout(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to log out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GetProfileHandler returns the authenticated user's account.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := hb.Auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		getLogger().Error("Failed to get profile", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}
