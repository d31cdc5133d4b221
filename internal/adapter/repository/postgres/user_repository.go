package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Info("user repository create", logger.Fields{
		"username": user.Username,
		"role":     user.Role,
	})

	const query = `
INSERT INTO users (id, username, password_hash, full_name, role, email, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.Role,
		user.Email,
		user.CreatedAt,
	).Scan(&user.CreatedAt); err != nil {
		logger.Error("user repository create failed", err, logger.Fields{
			"username": user.Username,
		})
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `
SELECT id, username, password_hash, full_name, role, email, created_at
FROM users
WHERE username = $1`

	var user domain.User
	if err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.Email,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrRecordNotFound
		}
		logger.Error("user repository get by username failed", err, logger.Fields{
			"username": username,
		})
		return domain.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
