package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set(ContextKeyRequestID, "req-123")

	Success(c, http.StatusOK, gin.H{"value": 1})

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "req-123", resp.Metadata.RequestID)
	assert.NotEmpty(t, resp.Metadata.Timestamp)
}

func TestFailEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Fail(c, http.StatusNotFound, ErrNotFound)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrNotFound, resp.Error.Code)
	assert.Equal(t, GetMessage(ErrNotFound), resp.Error.Message)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	// Without the middleware a request id is still generated.
	assert.NotEmpty(t, resp.Metadata.RequestID)
}

func TestFailWithFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	fields := map[string]string{"name": "name is required"}
	FailWithFields(c, http.StatusBadRequest, ErrValidation, fields)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "name is required", resp.Error.Fields["name"])
}

func TestGetMessageFallback(t *testing.T) {
	assert.NotEmpty(t, GetMessage(ErrCode("SOMETHING_NEW")))
}
