package storage

import (
	"context"
	"database/sql"
	"errors"

	"draftzi-backend/internal/models"
)

func (s *Storage) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	query := `
		SELECT id, user_id, avatar_url, job_title, department, settings, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.Profile
	if err := s.db.GetContext(ctx, &profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &profile, nil
}

type ProfileUpdate struct {
	AvatarURL  *string
	JobTitle   *string
	Department *string
	Settings   []byte
}

func (s *Storage) UpsertProfile(ctx context.Context, userID int, in ProfileUpdate) (*models.Profile, error) {
	settings := in.Settings
	if len(settings) == 0 {
		settings = []byte("{}")
	}

	query := `
		INSERT INTO profiles (user_id, avatar_url, job_title, department, settings)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET avatar_url = EXCLUDED.avatar_url, job_title = EXCLUDED.job_title,
			department = EXCLUDED.department, settings = EXCLUDED.settings,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, user_id, avatar_url, job_title, department, settings, created_at, updated_at
	`

	var profile models.Profile
	if err := s.db.GetContext(ctx, &profile, query,
		userID, in.AvatarURL, in.JobTitle, in.Department, settings); err != nil {
		return nil, err
	}

	return &profile, nil
}
