package usecase

import (
	"context"
	"fmt"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"

	"go.uber.org/zap"
)

// DashboardService serves the numbers behind the admin overview tab. Chart
// rendering itself stays on the client.
type DashboardService interface {
	GetOverview(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetOverview(ctx context.Context) (*response.DashboardResponse, error) {
	totalPatients, err := s.repo.Patient.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	totalAppointments, err := s.repo.Appointment.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	booked, err := s.repo.Appointment.CountByStatus(ctx, entity.AppointmentStatusBooked)
	if err != nil {
		return nil, fmt.Errorf("count booked appointments: %w", err)
	}

	revenue, err := s.repo.Payment.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	breakdown, err := s.repo.Appointment.StatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}

	monthly, err := s.repo.Payment.RevenueByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}

	statusCounts := make(map[string]int64, len(breakdown))
	for status, count := range breakdown {
		statusCounts[string(status)] = count
	}

	monthlyResponses := make([]response.MonthlyRevenueResponse, len(monthly))
	for i, entry := range monthly {
		monthlyResponses[i] = response.MonthlyRevenueResponse{
			Month:  entry.Month,
			Amount: entry.Amount.StringFixed(2),
		}
	}

	s.log.Info("Dashboard overview retrieved",
		zap.Int64("total_patients", totalPatients),
		zap.Int64("total_appointments", totalAppointments),
		zap.Int64("booked", booked),
		zap.String("total_revenue", revenue.StringFixed(2)),
	)

	return &response.DashboardResponse{
		TotalPatients:      totalPatients,
		TotalAppointments:  totalAppointments,
		BookedAppointments: booked,
		TotalRevenue:       revenue.StringFixed(2),
		StatusBreakdown:    statusCounts,
		MonthlyRevenue:     monthlyResponses,
	}, nil
}
