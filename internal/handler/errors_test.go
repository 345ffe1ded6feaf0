package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailInternalLogsCause(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/students", nil)

	failInternal(c, log, errors.New("connection refused"), "Failed to list students")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)

	// The cause stays out of the response but lands in the log.
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, buf.String(), "connection refused")
	assert.Contains(t, buf.String(), "Failed to list students")
}
