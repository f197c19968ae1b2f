package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain/models"
)

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ProfileRepository) getByUserID(ctx context.Context, userID int64) (models.UserProfile, error) {
	var (
		p   models.UserProfile
		dob sql.NullString
	)
	err := r.db().QueryRowContext(ctx, `
		SELECT id, user_id, phone, COALESCE(address, ''), DATE_FORMAT(date_of_birth, '%Y-%m-%d')
		FROM user_profiles
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&p.ID, &p.UserID, &p.Phone, &p.Address, &dob)
	if err != nil {
		return models.UserProfile{}, err
	}
	if dob.Valid {
		p.DateOfBirth = dob.String
	}
	return p, nil
}

// GetOrCreate returns the user's profile, creating an empty one on first
// access.
func (r ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (models.UserProfile, error) {
	p, err := r.getByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, err
	}

	if _, err := r.db().ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, phone, address)
		VALUES (?, '', '')
	`, userID); err != nil {
		// lost a create race; the row exists now
		if !IsDuplicateEntry(err) {
			return models.UserProfile{}, err
		}
	}
	return r.getByUserID(ctx, userID)
}

func (r ProfileRepository) Update(ctx context.Context, userID int64, p models.UserProfile) error {
	var dob any
	if p.DateOfBirth != "" {
		dob = p.DateOfBirth
	}
	res, err := r.db().ExecContext(ctx, `
		UPDATE user_profiles
		SET phone = ?, address = ?, date_of_birth = ?
		WHERE user_id = ?
	`, p.Phone, p.Address, dob, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL reports 0 when values are unchanged too; verify existence.
		if _, err := r.getByUserID(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}
