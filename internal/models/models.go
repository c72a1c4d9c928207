package models

import "time"

type Client struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Company   *string   `json:"company" db:"company"`
	CreatedBy int       `json:"created_by" db:"created_by"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type DocumentTemplate struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Content     *string   `json:"content" db:"content"`
	Category    *string   `json:"category" db:"category"`
	CreatedBy   int       `json:"created_by" db:"created_by"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Document struct {
	ID                 int       `json:"id" db:"id"`
	ClientID           int       `json:"client_id" db:"client_id"`
	TemplateID         *int      `json:"template_id" db:"template_id"`
	Name               string    `json:"name" db:"name"`
	Content            *string   `json:"content" db:"content"`
	AIGeneratedContent *string   `json:"ai_generated_content" db:"ai_generated_content"`
	Status             string    `json:"status" db:"status"`
	Version            int       `json:"version" db:"version"`
	CreatedBy          int       `json:"created_by" db:"created_by"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`

	// ClientName is populated by the list query's join; empty elsewhere.
	ClientName string `json:"client_name,omitempty" db:"client_name"`
}

type ComplianceDeadline struct {
	ID           int       `json:"id" db:"id"`
	ClientID     int       `json:"client_id" db:"client_id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	DeadlineDate time.Time `json:"deadline_date" db:"deadline_date"`
	Status       string    `json:"status" db:"status"`
	Priority     string    `json:"priority" db:"priority"`
	AssignedTo   int       `json:"assigned_to" db:"assigned_to"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
