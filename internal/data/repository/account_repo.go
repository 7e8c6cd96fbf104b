package repository

import (
	"context"
	"fmt"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminAccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error)
}

type PatientAccountRepository interface {
	Create(ctx context.Context, account *entity.PatientAccount) error
	FindByEmail(ctx context.Context, email string) (*entity.PatientAccount, error)
}

type adminAccountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminAccountRepository(db database.PgxIface, log *zap.Logger) AdminAccountRepository {
	return &adminAccountRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin_account")),
	}
}

func (r *adminAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	query := `
		SELECT id, username, password, created_at
		FROM admin_accounts
		WHERE username = $1
	`

	var account entity.AdminAccount
	err := r.db.QueryRow(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin account",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find admin account %s: %w", username, err)
	}

	return &account, nil
}

type patientAccountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPatientAccountRepository(db database.PgxIface, log *zap.Logger) PatientAccountRepository {
	return &patientAccountRepository{
		db:  db,
		log: log.With(zap.String("repository", "patient_account")),
	}
}

func (r *patientAccountRepository) Create(ctx context.Context, account *entity.PatientAccount) error {
	query := `
		INSERT INTO patient_accounts (id, email, password, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.Email,
		account.Password,
		account.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create patient account",
			zap.Error(err),
			zap.String("email", account.Email),
		)
		// caller inspects the wrapped error for unique violations
		return fmt.Errorf("create patient account %s: %w", account.Email, err)
	}

	return nil
}

func (r *patientAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.PatientAccount, error) {
	query := `
		SELECT id, email, password, created_at
		FROM patient_accounts
		WHERE email = $1
	`

	var account entity.PatientAccount
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find patient account",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find patient account %s: %w", email, err)
	}

	return &account, nil
}
