package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		to         string
		wantFields []string
	}{
		{"both empty", "", "", nil},
		{"valid range", "2025-01-01", "2025-01-31", nil},
		{"from only", "2025-01-01", "", nil},
		{"malformed from", "banana", "", []string{"from"}},
		{"malformed to", "", "01-31-2025", []string{"to"}},
		{"both malformed", "banana", "apple", []string{"from", "to"}},
		{"timestamp instead of date", "2025-01-01T00:00:00Z", "", []string{"from"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validateDateRange(tt.from, tt.to)
			if tt.wantFields == nil {
				assert.Nil(t, fields)
				return
			}
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestListAttendanceRejectsMalformedDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Malformed params must be rejected before any storage access,
	// so a nil service is never reached.
	h := NewAttendanceHandler(nil, zerolog.Nop())
	r := gin.New()
	r.GET("/students/:id/attendance", h.ListAttendance)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students/1/attendance?from=banana", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), `"from"`)
}
