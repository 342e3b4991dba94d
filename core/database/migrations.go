package database

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT UNIQUE NOT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	owner_id UUID REFERENCES users(id),
	title TEXT NOT NULL,
	role_slug TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	required_skills TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'open',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	job_id UUID REFERENCES jobs(id),
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	technical_skills TEXT NOT NULL DEFAULT '',
	experience_years REAL NOT NULL DEFAULT 0,
	resume_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS calendar_connections (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(id),
	provider TEXT NOT NULL,
	calendar_email TEXT NOT NULL,
	access_token TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	token_expires_at TIMESTAMPTZ NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, provider)
);

CREATE TABLE IF NOT EXISTS interviews (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	job_id UUID REFERENCES jobs(id),
	candidate_id UUID REFERENCES candidates(id),
	round INT NOT NULL DEFAULT 1,
	summary TEXT NOT NULL,
	provider_event_id TEXT NOT NULL DEFAULT '',
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL,
	attendees TEXT NOT NULL DEFAULT '',
	conferencing_link TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'scheduled',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS interview_responses (
	token TEXT PRIMARY KEY,
	interview_id UUID REFERENCES interviews(id),
	recipient TEXT NOT NULL,
	action TEXT NOT NULL,
	start_time TIMESTAMPTZ NOT NULL,
	end_time TIMESTAMPTZ NOT NULL,
	conferencing_link TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	sent_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	responded_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);
CREATE INDEX IF NOT EXISTS idx_interviews_candidate_id ON interviews(candidate_id);
CREATE INDEX IF NOT EXISTS idx_interview_responses_interview_id ON interview_responses(interview_id);
`

// Migrate applies the idempotent schema at startup.
func (d *Database) Migrate(ctx context.Context) error {
	_, err := d.sqlx.ExecContext(ctx, schemaSQL)
	return err
}
