package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty means allow all", raw: "", want: nil},
		{name: "single origin", raw: "https://app.example.com", want: []string{"https://app.example.com"}},
		{name: "trims whitespace", raw: " https://a.com , https://b.com ", want: []string{"https://a.com", "https://b.com"}},
		{name: "skips empty entries", raw: "https://a.com,,", want: []string{"https://a.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.raw))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "12")
	assert.Equal(t, 12, getEnvInt("SOME_INT", 5))

	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 5, getEnvInt("SOME_INT", 5))

	assert.Equal(t, 7, getEnvInt("UNSET_INT_KEY", 7))
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "login:42", CacheKey.AccountSessionKey(42))
	assert.Equal(t, "account:42:stats", CacheKey.AccountStatsKey(42))
}
