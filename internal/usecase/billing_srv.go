package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/billing"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BillingService interface {
	GetCatalog() []response.ServiceResponse
	CalculateTotal(ctx context.Context, patientName string) (*response.QuoteResponse, error)
	GenerateReceipt(ctx context.Context, req *request.GenerateReceiptRequest) (*response.ReceiptResponse, error)

	// Admin
	ListPayments(ctx context.Context) ([]response.PaymentResponse, error)
}

type billingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBillingService(repo *repository.Repository, log *zap.Logger) BillingService {
	return &billingService{
		repo: repo,
		log:  log.With(zap.String("service", "billing")),
		now:  time.Now,
	}
}

func (s *billingService) GetCatalog() []response.ServiceResponse {
	services := billing.Catalog()
	responses := make([]response.ServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = response.ServiceToResponse(svc)
	}
	return responses
}

func (s *billingService) CalculateTotal(ctx context.Context, patientName string) (*response.QuoteResponse, error) {
	appointment, demographic, quote, err := s.quoteForPatient(ctx, patientName)
	if err != nil {
		return nil, err
	}

	s.log.Info("Total calculated",
		zap.String("patient_name", patientName),
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("demographic_type", string(demographic)),
		zap.String("base_total", quote.BaseTotal.StringFixed(2)),
		zap.String("final_total", quote.FinalTotal.StringFixed(2)),
	)

	return response.QuoteToResponse(appointment, demographic, quote), nil
}

func (s *billingService) GenerateReceipt(ctx context.Context, req *request.GenerateReceiptRequest) (*response.ReceiptResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Generate receipt validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	method := entity.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, fmt.Errorf("invalid payment method %s", req.Method)
	}

	// always reprice right here; a total from an earlier calculate call may
	// be stale if the patient type changed in between
	appointment, _, quote, err := s.quoteForPatient(ctx, req.PatientName)
	if err != nil {
		return nil, err
	}

	paidAt := s.now()

	// receipt text is rendered before the payment row is written; if the
	// write fails the rendered text is simply lost with the error, nothing
	// is rolled back
	receiptText := billing.RenderReceipt(billing.ReceiptData{
		PatientName: req.PatientName,
		Date:        appointment.Date.Format("2006-01-02"),
		TimeSlot:    appointment.TimeSlot,
		Method:      method,
		Quote:       quote,
		PaidAt:      paidAt,
	})

	payment := &entity.Payment{
		ID:            uuid.New(),
		AppointmentID: appointment.ID,
		Amount:        quote.FinalTotal,
		Method:        method,
		DatePaid:      paidAt,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to save payment",
			zap.Error(err),
			zap.String("appointment_id", appointment.ID.String()),
			zap.String("amount", quote.FinalTotal.StringFixed(2)),
		)
		return nil, fmt.Errorf("save payment: %w", err)
	}

	s.log.Info("Receipt generated",
		zap.String("payment_id", payment.ID.String()),
		zap.String("appointment_id", appointment.ID.String()),
		zap.String("amount", payment.Amount.StringFixed(2)),
		zap.String("method", string(payment.Method)),
	)

	return &response.ReceiptResponse{
		ReceiptText: receiptText,
		Payment:     response.PaymentToResponse(payment),
	}, nil
}

func (s *billingService) ListPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.List(ctx)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}

// quoteForPatient prices the patient's latest non-cancelled appointment.
// A missing patient record is not an error: the quote falls back to the
// Regular rate, matching the desk system's defensive default.
func (s *billingService) quoteForPatient(ctx context.Context, patientName string) (*entity.Appointment, entity.DemographicType, billing.Quote, error) {
	if patientName == "" {
		return nil, "", billing.Quote{}, fmt.Errorf("patient name is required")
	}

	appointment, err := s.repo.Appointment.FindLatestActiveByPatientName(ctx, patientName)
	if err != nil {
		s.log.Error("Failed to find appointment for quote",
			zap.Error(err),
			zap.String("patient_name", patientName),
		)
		return nil, "", billing.Quote{}, fmt.Errorf("find appointment: %w", err)
	}
	if appointment == nil {
		return nil, "", billing.Quote{}, fmt.Errorf("no appointments found for patient %s", patientName)
	}

	demographic := entity.DemographicRegular
	patient, err := s.repo.Patient.FindByName(ctx, patientName)
	if err != nil {
		s.log.Error("Failed to find patient for quote",
			zap.Error(err),
			zap.String("patient_name", patientName),
		)
		return nil, "", billing.Quote{}, fmt.Errorf("find patient: %w", err)
	}
	if patient != nil {
		demographic = patient.DemographicType
	}

	quote := billing.ComputeQuote(appointment.Services, demographic)

	return appointment, demographic, quote, nil
}
