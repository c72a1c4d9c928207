package storage

import (
	"context"
	"time"

	"draftzi-backend/internal/models"
)

type NewDeadline struct {
	ClientID     int
	Title        string
	Description  *string
	DeadlineDate time.Time
	Priority     string
}

func (s *Storage) CreateDeadline(ctx context.Context, ownerID int, in NewDeadline) (*models.ComplianceDeadline, error) {
	query := `
		INSERT INTO compliance_deadlines (client_id, title, description, deadline_date, priority, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, client_id, title, description, deadline_date, status, priority, assigned_to, created_at
	`

	var deadline models.ComplianceDeadline
	if err := s.db.GetContext(ctx, &deadline, query,
		in.ClientID, in.Title, in.Description, in.DeadlineDate, in.Priority, ownerID); err != nil {
		return nil, err
	}

	return &deadline, nil
}

// UpcomingDeadlines returns the owner's next deadlines from today on, soonest first.
func (s *Storage) UpcomingDeadlines(ctx context.Context, ownerID, limit int) ([]models.ComplianceDeadline, error) {
	query := `
		SELECT id, client_id, title, description, deadline_date, status, priority, assigned_to, created_at
		FROM compliance_deadlines
		WHERE assigned_to = $1 AND deadline_date >= CURRENT_DATE
		ORDER BY deadline_date ASC
		LIMIT $2
	`

	deadlines := []models.ComplianceDeadline{}
	if err := s.db.SelectContext(ctx, &deadlines, query, ownerID, limit); err != nil {
		return nil, err
	}

	return deadlines, nil
}
