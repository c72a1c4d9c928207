package storage

import "context"

type Activity struct {
	UserID       int
	Action       string
	ResourceType string
	ResourceID   *int
	IPAddress    string
	UserAgent    string
}

// RecordActivity appends an audit row. Callers treat failures as best-effort.
func (s *Storage) RecordActivity(ctx context.Context, a Activity) error {
	query := `
		INSERT INTO user_activity (user_id, action, resource_type, resource_id, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		a.UserID, a.Action, nullIfEmpty(a.ResourceType), a.ResourceID,
		nullIfEmpty(a.IPAddress), nullIfEmpty(a.UserAgent))
	return err
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
