package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         *string   `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Profile struct {
	ID         int             `json:"id" db:"id"`
	UserID     int             `json:"user_id" db:"user_id"`
	AvatarURL  *string         `json:"avatar_url" db:"avatar_url"`
	JobTitle   *string         `json:"job_title" db:"job_title"`
	Department *string         `json:"department" db:"department"`
	Settings   json.RawMessage `json:"settings" db:"settings"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

type ActivityEntry struct {
	ID           int       `json:"id" db:"id"`
	UserID       *int      `json:"user_id" db:"user_id"`
	Action       string    `json:"action" db:"action"`
	ResourceType *string   `json:"resource_type" db:"resource_type"`
	ResourceID   *int      `json:"resource_id" db:"resource_id"`
	IPAddress    *string   `json:"ip_address" db:"ip_address"`
	UserAgent    *string   `json:"user_agent" db:"user_agent"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}
