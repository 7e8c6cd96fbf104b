package database

import (
	"context"
	"fmt"
)

// Statements run in order on every start. All idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS admin_accounts (
		id UUID PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS patient_accounts (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		account_id UUID NOT NULL,
		role VARCHAR(20) NOT NULL,
		token UUID UNIQUE NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		birth_date DATE,
		demographic_type VARCHAR(50),
		contact VARCHAR(100),
		status VARCHAR(50) NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// patient_name is a loose reference by design, no FK. Nothing stops two
	// appointments from sharing a date and time slot either.
	`CREATE TABLE IF NOT EXISTS appointments (
		id UUID PRIMARY KEY,
		patient_name VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		time_slot VARCHAR(50) NOT NULL,
		services TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'Booked',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		appointment_id UUID,
		amount NUMERIC(10,2),
		method VARCHAR(50),
		date_paid TIMESTAMPTZ
	)`,
	`INSERT INTO admin_accounts (id, username, password)
	 VALUES (gen_random_uuid(), 'admin', 'admin123')
	 ON CONFLICT (username) DO NOTHING`,
}

// Migrate creates the schema and seeds the default admin account.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
