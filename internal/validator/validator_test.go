package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Name     string `json:"name" binding:"required,min=2"`
	CourseID int    `json:"course_id" binding:"required"`
}

func bindJSON(t *testing.T, body string) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	var dst samplePayload
	return Bind(c, &dst)
}

func TestBindValid(t *testing.T) {
	fields := bindJSON(t, `{"name":"Alice","course_id":1}`)
	assert.Nil(t, fields)
}

func TestBindMissingFields(t *testing.T) {
	fields := bindJSON(t, `{}`)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "course_id")
}

func TestBindUsesJSONTagNames(t *testing.T) {
	fields := bindJSON(t, `{"name":"Alice"}`)
	// The error map is keyed by the json tag, not the Go field name.
	assert.Contains(t, fields, "course_id")
	assert.NotContains(t, fields, "CourseID")
}

func TestBindMalformedJSON(t *testing.T) {
	fields := bindJSON(t, `{"name":`)
	assert.Contains(t, fields, "detail")
}
