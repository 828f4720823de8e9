package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pixology/backend/internal/user/entity"
	"github.com/pixology/backend/internal/user/repository"
)

type AccountRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (entity.Account, error)
	Save(ctx context.Context, a entity.Account) (entity.Account, error)
}

type CryptoPassword interface {
	HashPassword(password string) ([]byte, error)
	ComparePasswords(password, hash string) bool
}

type AccountUseCase struct {
	accountRepo    AccountRepository
	cryptoPassword CryptoPassword
	logger         *slog.Logger
}

func NewUseCase(
	ar AccountRepository,
	cp CryptoPassword,
	logger *slog.Logger,
) AccountUseCase {
	logger = logger.With(slog.String("from", "account usecase"))
	return AccountUseCase{
		accountRepo:    ar,
		cryptoPassword: cp,
		logger:         logger,
	}
}

// Register creates an account with a unique username and email and a bcrypt
// hash of the password. Username and email are trimmed and email lowercased
// before any check; the password is hashed untrimmed.
func (u AccountUseCase) Register(ctx context.Context, username, email, password string) (entity.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	// checked in this order so the first violated rule is the one reported
	if username == "" {
		return entity.Account{}, ValidationError{msg: "username is required"}
	}
	if email == "" {
		return entity.Account{}, ValidationError{msg: "email is required"}
	}
	if strings.TrimSpace(password) == "" {
		return entity.Account{}, ValidationError{msg: "password is required"}
	}

	// The pre-checks exist for the friendly field-specific message; the
	// store's unique indexes stay the authority under concurrent inserts.
	exists, err := u.accountRepo.ExistsByUsername(ctx, username)
	if err != nil {
		u.logger.Warn("register", slog.String("error", err.Error()))
		return entity.Account{}, fmt.Errorf("username lookup: %w", err)
	}
	if exists {
		return entity.Account{}, ConflictError{msg: "username already exists"}
	}

	exists, err = u.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		u.logger.Warn("register", slog.String("error", err.Error()))
		return entity.Account{}, fmt.Errorf("email lookup: %w", err)
	}
	if exists {
		return entity.Account{}, ConflictError{msg: "email already exists"}
	}

	hash, err := u.cryptoPassword.HashPassword(password)
	if err != nil {
		u.logger.Error("register", slog.String("error", err.Error()))
		return entity.Account{}, fmt.Errorf("hash password: %w", err)
	}

	saved, err := u.accountRepo.Save(ctx, entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// a racing registration may slip past the pre-checks and lose at
		// the unique index; report it exactly like a pre-check conflict
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return entity.Account{}, ConflictError{msg: "username already exists"}
		case errors.Is(err, repository.ErrEmailExists):
			return entity.Account{}, ConflictError{msg: "email already exists"}
		case errors.Is(err, repository.ErrAlreadyExists):
			return entity.Account{}, ConflictError{msg: "account already exists"}
		}
		u.logger.Warn("register", slog.String("error", err.Error()))
		return entity.Account{}, fmt.Errorf("save account: %w", err)
	}

	return saved, nil
}

// Authenticate verifies the password for the account registered under the
// email. Every failure mode collapses into ErrInvalidCredentials.
func (u AccountUseCase) Authenticate(ctx context.Context, email, password string) (entity.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entity.Account{}, ErrInvalidCredentials
	}

	account, err := u.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return entity.Account{}, ErrInvalidCredentials
		}
		u.logger.Warn("authenticate", slog.String("error", err.Error()))
		return entity.Account{}, fmt.Errorf("account lookup: %w", err)
	}

	if !u.cryptoPassword.ComparePasswords(password, account.PasswordHash) {
		return entity.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
