package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AccountSessionKey returns the cache key tracking an account's active session.
func (r *CacheKeyStruct) AccountSessionKey(accountID int) string {
	return fmt.Sprintf("login:%d", accountID)
}

// AccountStatsKey returns the cache key for an account's analytics snapshot.
func (r *CacheKeyStruct) AccountStatsKey(accountID int) string {
	return fmt.Sprintf("account:%d:stats", accountID)
}

var CacheKey = NewCacheKeyStruct()
