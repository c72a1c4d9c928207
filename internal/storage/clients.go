package storage

import (
	"context"

	"draftzi-backend/internal/models"
)

type NewClient struct {
	Name    string
	Email   *string
	Phone   *string
	Company *string
}

func (s *Storage) CreateClient(ctx context.Context, ownerID int, in NewClient) (*models.Client, error) {
	query := `
		INSERT INTO clients (name, email, phone, company, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, company, created_by, status, created_at, updated_at
	`

	var client models.Client
	if err := s.db.GetContext(ctx, &client, query, in.Name, in.Email, in.Phone, in.Company, ownerID); err != nil {
		return nil, err
	}

	return &client, nil
}

// ListClients returns the owner's clients, newest first.
func (s *Storage) ListClients(ctx context.Context, ownerID int) ([]models.Client, error) {
	query := `
		SELECT id, name, email, phone, company, created_by, status, created_at, updated_at
		FROM clients
		WHERE created_by = $1
		ORDER BY created_at DESC
	`

	clients := []models.Client{}
	if err := s.db.SelectContext(ctx, &clients, query, ownerID); err != nil {
		return nil, err
	}

	return clients, nil
}
