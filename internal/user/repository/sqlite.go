package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/pixology/backend/internal/user/entity"
)

type SQLiteStorage struct {
	db *sql.DB
}

func New(ctx context.Context, dbPath string) (SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return SQLiteStorage{}, err
	}
	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS accounts (
		id text primary key,
		username text not null unique,
		email text not null unique,
		password_hash text not null,
		created_at timestamp not null);
	`)
	if err != nil {
		return SQLiteStorage{}, fmt.Errorf("db schema init err: %w", err)
	}

	return SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE username = ?)`,
		username).
		Scan(&exists)
	return exists, err
}

func (s *SQLiteStorage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email = ?)`,
		email).
		Scan(&exists)
	return exists, err
}

func (s *SQLiteStorage) FindByEmail(ctx context.Context, email string) (entity.Account, error) {
	var a entity.Account
	if err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM accounts WHERE email = ?`,
		email).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Account{}, ErrRecordNotFound
		}
		return entity.Account{}, err
	}

	return a, nil
}

// Save inserts the account, assigning id and created_at when unset. The unique
// indexes on username and email are the authority for uniqueness under
// concurrent registrations; a violated index surfaces as ErrUsernameExists,
// ErrEmailExists or, if the column cannot be attributed, ErrAlreadyExists.
func (s *SQLiteStorage) Save(ctx context.Context, a entity.Account) (entity.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts(id, username, email, password_hash, created_at) VALUES(?,?,?,?,?)`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			switch {
			case strings.Contains(sqliteErr.Error(), "accounts.username"):
				return entity.Account{}, ErrUsernameExists
			case strings.Contains(sqliteErr.Error(), "accounts.email"):
				return entity.Account{}, ErrEmailExists
			}
			return entity.Account{}, ErrAlreadyExists
		}
		return entity.Account{}, err
	}

	return a, nil
}
