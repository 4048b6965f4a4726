package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultly/services/booking"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestWriteServiceErrorMapsWorkflowCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"forbidden", booking.NewForbiddenError("not yours"), http.StatusForbidden},
		{"invalid state", booking.NewStateError("wrong step"), http.StatusConflict},
		{"payment", booking.NewPaymentError("card declined"), http.StatusPaymentRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			writeServiceError(c, tt.err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWriteServiceErrorFallbackUsesStandardShape(t *testing.T) {
	c, rec := newTestContext()
	writeServiceError(c, errors.New("mongo timed out"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "request failed", body.Message)
	assert.Equal(t, "mongo timed out", body.Details)
}
