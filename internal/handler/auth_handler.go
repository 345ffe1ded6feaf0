package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edukita/studentbook-backend/internal/middleware"
	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
	"github.com/edukita/studentbook-backend/internal/response"
	"github.com/edukita/studentbook-backend/internal/service"
	"github.com/edukita/studentbook-backend/internal/validator"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService    *service.AuthService
	accountService *service.AccountService
	log            zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, accountService *service.AccountService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
		log:            log.With().Str("component", "auth_handler").Logger(),
	}
}

// Register godoc
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failInternal(c, h.log, err, "Failed to register account")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"account": account})
}

// Login godoc
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		failInternal(c, h.log, err, "Failed to authenticate account")
		return
	}

	token, jti, err := h.authService.GenerateToken(account.ID)
	if err != nil {
		failInternal(c, h.log, err, "Failed to generate token")
		return
	}
	if err := h.authService.RegisterSession(c.Request.Context(), account.ID, jti); err != nil {
		failInternal(c, h.log, err, "Failed to register session")
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, Account: *account})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the account's session so the current token stops working.
func (h *AuthHandler) Logout(c *gin.Context) {
	accountID := middleware.AccountID(c)
	if accountID == 0 {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.ClearSession(c.Request.Context(), accountID); err != nil {
		failInternal(c, h.log, err, "Failed to clear session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
