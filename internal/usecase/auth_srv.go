package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/request"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/dto/response"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// DefaultPatientPassword is assigned to every new patient account. The clinic
// stores and compares credentials in clear text; that gap is kept on purpose.
const DefaultPatientPassword = "123"

const uniqueViolationCode = "23505"

type AuthService interface {
	AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error)
	PatientRegister(ctx context.Context, req *request.PatientRegisterRequest) (*response.AuthResponse, error)
	PatientLogin(ctx context.Context, req *request.PatientLoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Admin login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	account, err := s.repo.AdminAccount.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find admin account", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find account")
	}

	if account == nil || account.Password != req.Password {
		s.log.Warn("Invalid admin credentials", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	session, err := s.createSession(ctx, account.ID, entity.RoleAdmin)
	if err != nil {
		s.log.Error("Failed to create admin session", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin logged in", zap.String("username", req.Username))

	return response.SessionToAuthResponse(session), nil
}

func (s *authService) PatientRegister(ctx context.Context, req *request.PatientRegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patient register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.PatientAccount.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	account := &entity.PatientAccount{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:    req.Email,
		Password: DefaultPatientPassword,
	}

	if err := s.repo.PatientAccount.Create(ctx, account); err != nil {
		// two registrations can race past the FindByEmail check; the unique
		// index reports the loser here
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("email already registered")
		}
		s.log.Error("Failed to create patient account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	session, err := s.createSession(ctx, account.ID, entity.RolePatient)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("email", req.Email))
		return &response.AuthResponse{
			AccountID: account.ID.String(),
			Role:      entity.RolePatient,
		}, nil
	}

	s.log.Info("Patient registered", zap.String("email", req.Email))

	return response.SessionToAuthResponse(session), nil
}

func (s *authService) PatientLogin(ctx context.Context, req *request.PatientLoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patient login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	account, err := s.repo.PatientAccount.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find patient account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find account")
	}

	// plain comparison, same as the desk system
	if account == nil || account.Password != req.Password {
		s.log.Warn("Invalid patient credentials", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	session, err := s.createSession(ctx, account.ID, entity.RolePatient)
	if err != nil {
		s.log.Error("Failed to create patient session", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Patient logged in", zap.String("email", req.Email))

	return response.SessionToAuthResponse(session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.String("token", token), zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("token", token))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("Logged out", zap.String("token", token))
	return nil
}

func (s *authService) createSession(ctx context.Context, accountID uuid.UUID, role entity.Role) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		AccountID: accountID,
		Role:      role,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
