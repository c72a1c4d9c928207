package storage

import "context"

// InitSchema creates every table the backend relies on. All statements use
// IF NOT EXISTS so it is safe to run on every startup.
func (s *Storage) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaDDL)
	return err
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	email VARCHAR(255) UNIQUE NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	name VARCHAR(255),
	role VARCHAR(50) DEFAULT 'user',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS clients (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255),
	phone VARCHAR(50),
	company VARCHAR(255),
	created_by INTEGER REFERENCES users(id),
	status VARCHAR(50) DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS document_templates (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT,
	content TEXT,
	category VARCHAR(100),
	created_by INTEGER REFERENCES users(id),
	is_active BOOLEAN DEFAULT true,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS documents (
	id SERIAL PRIMARY KEY,
	client_id INTEGER REFERENCES clients(id) ON DELETE CASCADE,
	template_id INTEGER REFERENCES document_templates(id),
	name VARCHAR(255) NOT NULL,
	content TEXT,
	ai_generated_content TEXT,
	status VARCHAR(50) DEFAULT 'draft',
	version INTEGER DEFAULT 1,
	created_by INTEGER REFERENCES users(id),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS compliance_deadlines (
	id SERIAL PRIMARY KEY,
	client_id INTEGER REFERENCES clients(id) ON DELETE CASCADE,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	deadline_date DATE NOT NULL,
	status VARCHAR(50) DEFAULT 'pending',
	priority VARCHAR(50) DEFAULT 'medium',
	assigned_to INTEGER REFERENCES users(id),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profiles (
	id SERIAL PRIMARY KEY,
	user_id INTEGER UNIQUE REFERENCES users(id) ON DELETE CASCADE,
	avatar_url VARCHAR(500),
	job_title VARCHAR(255),
	department VARCHAR(100),
	settings JSONB DEFAULT '{}',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_activity (
	id SERIAL PRIMARY KEY,
	user_id INTEGER REFERENCES users(id),
	action VARCHAR(255) NOT NULL,
	resource_type VARCHAR(100),
	resource_id INTEGER,
	ip_address VARCHAR(45),
	user_agent TEXT,
	timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_documents (
	id SERIAL PRIMARY KEY,
	user_id INTEGER REFERENCES users(id) ON DELETE CASCADE,
	document_id INTEGER REFERENCES documents(id) ON DELETE CASCADE,
	permission_level VARCHAR(50) DEFAULT 'view',
	assigned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(user_id, document_id)
);

CREATE TABLE IF NOT EXISTS pending_documents (
	id SERIAL PRIMARY KEY,
	document_id INTEGER REFERENCES documents(id) ON DELETE CASCADE,
	assigned_to INTEGER REFERENCES users(id),
	due_date DATE,
	priority VARCHAR(50) DEFAULT 'medium',
	status VARCHAR(50) DEFAULT 'pending',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
