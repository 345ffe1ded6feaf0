package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/edukita/studentbook-backend/internal/config"
	"github.com/edukita/studentbook-backend/internal/database"
	"github.com/edukita/studentbook-backend/internal/logger"
	"github.com/edukita/studentbook-backend/internal/repository"
	"github.com/edukita/studentbook-backend/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	accountRepo := repository.NewAccountRepository(pool)
	authService := service.NewAuthService(cfg, nil)
	accountService := service.NewAccountService(accountRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Account ===")

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	account, err := accountService.Register(ctx, username, password)
	if err != nil {
		if err == repository.ErrDuplicateUsername {
			fmt.Println("Error: Username already exists")
			return
		}
		log.Fatal().Err(err).Msg("Failed to create account")
	}

	fmt.Printf("Account created: id=%d username=%s\n", account.ID, account.Username)
}
