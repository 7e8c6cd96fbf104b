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

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context) ([]*entity.Appointment, error)
	Count(ctx context.Context) (int64, error)

	// Business queries
	FindActiveByPatientName(ctx context.Context, patientName string) ([]*entity.Appointment, error)
	FindLatestActiveByPatientName(ctx context.Context, patientName string) (*entity.Appointment, error)
	CountByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error)
	StatusBreakdown(ctx context.Context) (map[entity.AppointmentStatus]int64, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) error
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_name, date, time_slot, services, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID,
		appointment.PatientName,
		appointment.Date,
		appointment.TimeSlot,
		appointment.Services,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("patient_name", appointment.PatientName),
			zap.String("time_slot", appointment.TimeSlot),
		)
		return fmt.Errorf("create appointment for %s: %w", appointment.PatientName, err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, date, time_slot, services, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	var appointment entity.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.PatientName,
		&appointment.Date,
		&appointment.TimeSlot,
		&appointment.Services,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, fmt.Errorf("find appointment by ID %s: %w", id.String(), err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, date, time_slot, services, status, created_at, updated_at
		FROM appointments
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list appointments", zap.Error(err))
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM appointments`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count appointments", zap.Error(err))
		return 0, fmt.Errorf("count appointments: %w", err)
	}

	return count, nil
}

func (r *appointmentRepository) FindActiveByPatientName(ctx context.Context, patientName string) ([]*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, date, time_slot, services, status, created_at, updated_at
		FROM appointments
		WHERE patient_name = $1 AND status != 'Cancelled'
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, patientName)
	if err != nil {
		r.log.Error("Failed to find appointments by patient name",
			zap.Error(err),
			zap.String("patient_name", patientName),
		)
		return nil, fmt.Errorf("find appointments by patient name %s: %w", patientName, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *appointmentRepository) FindLatestActiveByPatientName(ctx context.Context, patientName string) (*entity.Appointment, error) {
	query := `
		SELECT id, patient_name, date, time_slot, services, status, created_at, updated_at
		FROM appointments
		WHERE patient_name = $1 AND status != 'Cancelled'
		ORDER BY date DESC
		LIMIT 1
	`

	var appointment entity.Appointment
	err := r.db.QueryRow(ctx, query, patientName).Scan(
		&appointment.ID,
		&appointment.PatientName,
		&appointment.Date,
		&appointment.TimeSlot,
		&appointment.Services,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest appointment by patient name",
			zap.Error(err),
			zap.String("patient_name", patientName),
		)
		return nil, fmt.Errorf("find latest appointment for %s: %w", patientName, err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE status = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count appointments by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count appointments by status %s: %w", string(status), err)
	}

	return count, nil
}

func (r *appointmentRepository) StatusBreakdown(ctx context.Context) (map[entity.AppointmentStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM appointments GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get appointment status breakdown", zap.Error(err))
		return nil, fmt.Errorf("appointment status breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make(map[entity.AppointmentStatus]int64)
	for rows.Next() {
		var status entity.AppointmentStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan status breakdown row", zap.Error(err))
			return nil, fmt.Errorf("scan status breakdown row: %w", err)
		}
		breakdown[status] = count
	}

	return breakdown, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, appointmentID, status)
	if err != nil {
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", appointmentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %s status to %s: %w", appointmentID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID.String())
	}

	return nil
}

func scanAppointments(rows pgx.Rows) ([]*entity.Appointment, error) {
	var appointments []*entity.Appointment
	for rows.Next() {
		var appointment entity.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientName,
			&appointment.Date,
			&appointment.TimeSlot,
			&appointment.Services,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, &appointment)
	}

	return appointments, nil
}
