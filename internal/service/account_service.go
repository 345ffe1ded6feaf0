package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/edukita/studentbook-backend/internal/model"
	"github.com/edukita/studentbook-backend/internal/repository"
)

// AccountService handles account registration and credential checks.
type AccountService struct {
	accountRepo *repository.AccountRepository
	auth        *AuthService
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo *repository.AccountRepository, auth *AuthService) *AccountService {
	return &AccountService{accountRepo: accountRepo, auth: auth}
}

// Register creates a new account with a hashed password.
// repository.ErrDuplicateUsername passes through for the handler to map
// to a conflict.
func (s *AccountService) Register(ctx context.Context, username, password string) (*model.Account, error) {
	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{Username: username, PasswordHash: hash}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Authenticate verifies a username/password pair. An unknown username
// and a wrong password both return ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.auth.CheckPassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// GetByID retrieves an account by ID.
func (s *AccountService) GetByID(ctx context.Context, id int) (*model.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return account, nil
}
