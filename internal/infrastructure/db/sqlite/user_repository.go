package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/careerforge/resume-assistant/internal/core/domain"
	"github.com/careerforge/resume-assistant/internal/dbx"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create checks username then email before inserting, all in one
// transaction. A unique-constraint failure from a concurrent writer is
// mapped to the same errors.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := checkAvailable(ctx, tx, user.Username, user.Email); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
			user.Username, user.Email, user.PasswordHash, formatTime(user.CreatedAt))
		if err != nil {
			if dupErr := uniqueViolation(err); dupErr != nil {
				return dupErr
			}
			return fmt.Errorf("insert user: %w", err)
		}
		created.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// CheckAvailable reports ErrDuplicateUsername or ErrDuplicateEmail, in that
// order, without writing anything.
func (r *UserRepository) CheckAvailable(ctx context.Context, username, email string) error {
	return checkAvailable(ctx, r.db, username, email)
}

// Ping reports whether the database is reachable.
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func checkAvailable(ctx context.Context, q dbx.DBTX, username, email string) error {
	if taken, err := exists(ctx, q, `SELECT 1 FROM users WHERE username = ?`, username); err != nil {
		return err
	} else if taken {
		return domain.ErrDuplicateUsername
	}
	if taken, err := exists(ctx, q, `SELECT 1 FROM users WHERE email = ?`, email); err != nil {
		return err
	} else if taken {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func exists(ctx context.Context, tx dbx.DBTX, query string, arg any) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return true, nil
}

func uniqueViolation(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) || se.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return nil
	}
	switch msg := se.Error(); {
	case strings.Contains(msg, "users.username"):
		return domain.ErrDuplicateUsername
	case strings.Contains(msg, "users.email"):
		return domain.ErrDuplicateEmail
	}
	return nil
}
