package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// In-memory repository fakes for service tests. Each fake keeps the same
// ordering and not-found conventions as the Postgres implementation: lookups
// that miss return (nil, nil), status updates on unknown IDs return an error.

type fakePatientRepo struct {
	patients  []*entity.Patient
	createErr error
}

func (f *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.patients = append(f.patients, patient)
	return nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByName(_ context.Context, name string) (*entity.Patient, error) {
	var latest *entity.Patient
	for _, p := range f.patients {
		if p.Name != name {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (f *fakePatientRepo) List(_ context.Context) ([]*entity.Patient, error) {
	out := make([]*entity.Patient, len(f.patients))
	copy(out, f.patients)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakePatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.patients)), nil
}

func (f *fakePatientRepo) UpdateStatus(_ context.Context, patientID uuid.UUID, status entity.PatientStatus) error {
	for _, p := range f.patients {
		if p.ID == patientID {
			p.Status = status
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("patient %s not found", patientID)
}

type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, len(f.appointments))
	copy(out, f.appointments)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeAppointmentRepo) FindActiveByPatientName(_ context.Context, patientName string) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range f.appointments {
		if a.PatientName == patientName && a.Status != entity.AppointmentStatusCancelled {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAppointmentRepo) FindLatestActiveByPatientName(ctx context.Context, patientName string) (*entity.Appointment, error) {
	active, err := f.FindActiveByPatientName(ctx, patientName)
	if err != nil || len(active) == 0 {
		return nil, err
	}
	return active[0], nil
}

func (f *fakeAppointmentRepo) CountByStatus(_ context.Context, status entity.AppointmentStatus) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepo) StatusBreakdown(_ context.Context) (map[entity.AppointmentStatus]int64, error) {
	breakdown := make(map[entity.AppointmentStatus]int64)
	for _, a := range f.appointments {
		breakdown[a.Status]++
	}
	return breakdown, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, appointmentID uuid.UUID, status entity.AppointmentStatus) error {
	for _, a := range f.appointments {
		if a.ID == appointmentID {
			a.Status = status
			a.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", appointmentID)
}

type fakePaymentRepo struct {
	payments  []*entity.Payment
	createErr error
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, len(f.payments))
	copy(out, f.payments)
	sort.Slice(out, func(i, j int) bool { return out[i].DatePaid.After(out[j].DatePaid) })
	return out, nil
}

func (f *fakePaymentRepo) FindByAppointmentID(_ context.Context, appointmentID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.AppointmentID == appointmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.payments {
		total = total.Add(p.Amount)
	}
	return total, nil
}

func (f *fakePaymentRepo) RevenueByMonth(_ context.Context) ([]repository.MonthlyRevenue, error) {
	byMonth := make(map[string]decimal.Decimal)
	for _, p := range f.payments {
		month := p.DatePaid.Format("2006-01")
		byMonth[month] = byMonth[month].Add(p.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]repository.MonthlyRevenue, len(months))
	for i, month := range months {
		out[i] = repository.MonthlyRevenue{Month: month, Amount: byMonth[month]}
	}
	return out, nil
}

type fakeAdminAccountRepo struct {
	accounts []*entity.AdminAccount
}

func (f *fakeAdminAccountRepo) FindByUsername(_ context.Context, username string) (*entity.AdminAccount, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

type fakePatientAccountRepo struct {
	accounts  []*entity.PatientAccount
	createErr error
}

func (f *fakePatientAccountRepo) Create(_ context.Context, account *entity.PatientAccount) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakePatientAccountRepo) FindByEmail(_ context.Context, email string) (*entity.PatientAccount, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions  []*entity.Session
	createErr error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	for _, s := range f.sessions {
		if s.Token.String() == token {
			now := time.Now()
			s.RevokedAt = &now
			return nil
		}
	}
	return nil
}

type fakes struct {
	patients        *fakePatientRepo
	appointments    *fakeAppointmentRepo
	payments        *fakePaymentRepo
	adminAccounts   *fakeAdminAccountRepo
	patientAccounts *fakePatientAccountRepo
	sessions        *fakeSessionRepo
}

func newFakeRepository() (*repository.Repository, *fakes) {
	f := &fakes{
		patients:        &fakePatientRepo{},
		appointments:    &fakeAppointmentRepo{},
		payments:        &fakePaymentRepo{},
		adminAccounts:   &fakeAdminAccountRepo{},
		patientAccounts: &fakePatientAccountRepo{},
		sessions:        &fakeSessionRepo{},
	}
	repo := &repository.Repository{
		AdminAccount:   f.adminAccounts,
		PatientAccount: f.patientAccounts,
		Session:        f.sessions,
		Patient:        f.patients,
		Appointment:    f.appointments,
		Payment:        f.payments,
	}
	return repo, f
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
