package repositories

import (
	"context"
	"database/sql"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin finds a user by email or username.
func (r UserRepository) GetByLogin(ctx context.Context, login string) (models.User, error) {
	var u models.User
	err := r.db().QueryRowContext(ctx, `
		SELECT id, name, username, email, password_hash, role, created_at
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, login, login).Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

func (r UserRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	var count int
	err := r.db().QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE email = ? OR username = ?
	`, email, username).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO users (name, username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, u.Name, u.Username, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
