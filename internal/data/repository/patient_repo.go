package repository

import (
	"context"
	"fmt"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByName(ctx context.Context, name string) (*entity.Patient, error)
	List(ctx context.Context) ([]*entity.Patient, error)
	Count(ctx context.Context) (int64, error)

	// Business queries
	UpdateStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) error
}

type patientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPatientRepository(db database.PgxIface, log *zap.Logger) PatientRepository {
	return &patientRepository{
		db:  db,
		log: log.With(zap.String("repository", "patient")),
	}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	query := `
		INSERT INTO patients (id, name, birth_date, demographic_type, contact, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		patient.ID,
		patient.Name,
		patient.BirthDate,
		patient.DemographicType,
		patient.Contact,
		patient.Status,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create patient",
			zap.Error(err),
			zap.String("name", patient.Name),
		)
		return fmt.Errorf("create patient %s: %w", patient.Name, err)
	}

	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	query := `
		SELECT id, name, birth_date, demographic_type, contact, status, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var patient entity.Patient
	err := r.db.QueryRow(ctx, query, id).Scan(
		&patient.ID,
		&patient.Name,
		&patient.BirthDate,
		&patient.DemographicType,
		&patient.Contact,
		&patient.Status,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find patient by ID",
			zap.Error(err),
			zap.String("patient_id", id.String()),
		)
		return nil, fmt.Errorf("find patient by ID %s: %w", id.String(), err)
	}

	return &patient, nil
}

func (r *patientRepository) FindByName(ctx context.Context, name string) (*entity.Patient, error) {
	query := `
		SELECT id, name, birth_date, demographic_type, contact, status, created_at, updated_at
		FROM patients
		WHERE name = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var patient entity.Patient
	err := r.db.QueryRow(ctx, query, name).Scan(
		&patient.ID,
		&patient.Name,
		&patient.BirthDate,
		&patient.DemographicType,
		&patient.Contact,
		&patient.Status,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find patient by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find patient by name %s: %w", name, err)
	}

	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	query := `
		SELECT id, name, birth_date, demographic_type, contact, status, created_at, updated_at
		FROM patients
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*entity.Patient
	for rows.Next() {
		var patient entity.Patient
		err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.BirthDate,
			&patient.DemographicType,
			&patient.Contact,
			&patient.Status,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan patient row", zap.Error(err))
			return nil, fmt.Errorf("scan patient row: %w", err)
		}
		patients = append(patients, &patient)
	}

	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM patients`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count patients", zap.Error(err))
		return 0, fmt.Errorf("count patients: %w", err)
	}

	return count, nil
}

func (r *patientRepository) UpdateStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) error {
	query := `UPDATE patients SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, patientID, status)
	if err != nil {
		r.log.Error("Failed to update patient status",
			zap.Error(err),
			zap.String("patient_id", patientID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update patient %s status to %s: %w", patientID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("patient %s not found", patientID.String())
	}

	return nil
}
