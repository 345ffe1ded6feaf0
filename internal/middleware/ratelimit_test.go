package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	rl := NewRateLimiter(3, time.Minute)
	router.GET("/", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(), "request %d within budget", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestRateLimiterSeparatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	rl := NewRateLimiter(1, time.Minute)
	router.GET("/", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))
	// A different IP has its own bucket.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
}
