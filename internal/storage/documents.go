package storage

import (
	"context"

	"draftzi-backend/internal/models"
)

type NewDocument struct {
	ClientID        int
	TemplateID      *int
	Name            string
	Content         string
	EnhancedContent string
}

func (s *Storage) CreateDocument(ctx context.Context, ownerID int, in NewDocument) (*models.Document, error) {
	query := `
		INSERT INTO documents (client_id, template_id, name, content, ai_generated_content, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, client_id, template_id, name, content, ai_generated_content,
			status, version, created_by, created_at, updated_at
	`

	var doc models.Document
	if err := s.db.GetContext(ctx, &doc, query,
		in.ClientID, in.TemplateID, in.Name, in.Content, in.EnhancedContent, ownerID); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ListDocuments returns the owner's documents joined with the client name, newest first.
func (s *Storage) ListDocuments(ctx context.Context, ownerID int) ([]models.Document, error) {
	query := `
		SELECT d.id, d.client_id, d.template_id, d.name, d.content, d.ai_generated_content,
			d.status, d.version, d.created_by, d.created_at, d.updated_at,
			c.name AS client_name
		FROM documents d
		JOIN clients c ON c.id = d.client_id
		WHERE d.created_by = $1
		ORDER BY d.created_at DESC
	`

	docs := []models.Document{}
	if err := s.db.SelectContext(ctx, &docs, query, ownerID); err != nil {
		return nil, err
	}

	return docs, nil
}

type NewTemplate struct {
	Name        string
	Description *string
	Content     *string
	Category    *string
}

func (s *Storage) CreateTemplate(ctx context.Context, ownerID int, in NewTemplate) (*models.DocumentTemplate, error) {
	query := `
		INSERT INTO document_templates (name, description, content, category, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, content, category, created_by, is_active, created_at
	`

	var tpl models.DocumentTemplate
	if err := s.db.GetContext(ctx, &tpl, query,
		in.Name, in.Description, in.Content, in.Category, ownerID); err != nil {
		return nil, err
	}

	return &tpl, nil
}

func (s *Storage) ListTemplates(ctx context.Context, ownerID int) ([]models.DocumentTemplate, error) {
	query := `
		SELECT id, name, description, content, category, created_by, is_active, created_at
		FROM document_templates
		WHERE created_by = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	templates := []models.DocumentTemplate{}
	if err := s.db.SelectContext(ctx, &templates, query, ownerID); err != nil {
		return nil, err
	}

	return templates, nil
}
