package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/edukita/studentbook-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrSessionInvalid is returned when a token's JTI no longer matches
// the session recorded in Redis (logged out or replaced by a new login).
var ErrSessionInvalid = errors.New("session no longer active")

// Claims extends JWT standard claims with the account id every core
// call is scoped by.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int `json:"account_id"`
}

// AuthService handles password hashing, JWT issuing and session tracking.
type AuthService struct {
	cfg *config.Config
	rdb *redis.Client
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{cfg: cfg, rdb: rdb}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a signed JWT for an account and returns the
// token along with its JTI. Session registration is a separate step so
// token issuing itself has no storage dependency.
func (s *AuthService) GenerateToken(accountID int) (token, jti string, err error) {
	jti = uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		AccountID: accountID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return signed, jti, nil
}

// RegisterSession stores the token's JTI in Redis with the JWT expiry.
// A later login overwrites it, invalidating the previous token.
func (s *AuthService) RegisterSession(ctx context.Context, accountID int, jti string) error {
	key := config.CacheKey.AccountSessionKey(accountID)
	if err := s.rdb.Set(ctx, key, jti, s.cfg.JWTExpiry).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateSession checks that the token's JTI matches the active
// session in Redis.
func (s *AuthService) ValidateSession(ctx context.Context, accountID int, jti string) error {
	key := config.CacheKey.AccountSessionKey(accountID)
	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionInvalid
		}
		return fmt.Errorf("check session: %w", err)
	}
	if stored != jti {
		return ErrSessionInvalid
	}
	return nil
}

// ClearSession removes an account's session from Redis (logout).
func (s *AuthService) ClearSession(ctx context.Context, accountID int) error {
	return s.rdb.Del(ctx, config.CacheKey.AccountSessionKey(accountID)).Err()
}
