package repository

import (
	"context"
	"fmt"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MonthlyRevenue is one month of collected payments, oldest first.
type MonthlyRevenue struct {
	Month  string
	Amount decimal.Decimal
}

// PaymentRepository is append-only: no Update or Delete exists on purpose.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	List(ctx context.Context) ([]*entity.Payment, error)
	FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]*entity.Payment, error)

	// Dashboard queries
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, appointment_id, amount, method, date_paid)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AppointmentID,
		payment.Amount,
		payment.Method,
		payment.DatePaid,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("appointment_id", payment.AppointmentID.String()),
			zap.String("amount", payment.Amount.StringFixed(2)),
		)
		return fmt.Errorf("create payment for appointment %s: %w", payment.AppointmentID.String(), err)
	}

	return nil
}

func (r *paymentRepository) List(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, appointment_id, amount, method, date_paid
		FROM payments
		ORDER BY date_paid DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.AppointmentID,
			&payment.Amount,
			&payment.Method,
			&payment.DatePaid,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, appointment_id, amount, method, date_paid
		FROM payments
		WHERE appointment_id = $1
		ORDER BY date_paid DESC
	`

	rows, err := r.db.Query(ctx, query, appointmentID)
	if err != nil {
		r.log.Error("Failed to find payments by appointment ID",
			zap.Error(err),
			zap.String("appointment_id", appointmentID.String()),
		)
		return nil, fmt.Errorf("find payments by appointment ID %s: %w", appointmentID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.AppointmentID,
			&payment.Amount,
			&payment.Method,
			&payment.DatePaid,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

func (r *paymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments`

	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum payments", zap.Error(err))
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}

	return total, nil
}

func (r *paymentRepository) RevenueByMonth(ctx context.Context) ([]MonthlyRevenue, error) {
	query := `
		SELECT to_char(date_paid, 'YYYY-MM') AS month, SUM(amount)
		FROM payments
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get revenue by month", zap.Error(err))
		return nil, fmt.Errorf("revenue by month: %w", err)
	}
	defer rows.Close()

	var series []MonthlyRevenue
	for rows.Next() {
		var entry MonthlyRevenue
		if err := rows.Scan(&entry.Month, &entry.Amount); err != nil {
			r.log.Error("Failed to scan monthly revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan monthly revenue row: %w", err)
		}
		series = append(series, entry)
	}

	return series, nil
}
