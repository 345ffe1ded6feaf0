package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukita/studentbook-backend/internal/config"
	"github.com/edukita/studentbook-backend/internal/service"
)

func newAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}, nil)
}

func performRequest(authSvc *service.AuthService, authHeader string) (*httptest.ResponseRecorder, int) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var gotAccountID int
	router.GET("/protected", RequireJWT(authSvc), func(c *gin.Context) {
		gotAccountID = AccountID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, gotAccountID
}

func TestRequireJWT(t *testing.T) {
	authSvc := newAuthService()
	token, _, err := authSvc.GenerateToken(42)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantID: 42},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, accountID := performRequest(authSvc, tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantID, accountID)
			}
		})
	}
}

func TestAccountIDWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, 0, AccountID(c))
	assert.Nil(t, GetClaims(c))
}
