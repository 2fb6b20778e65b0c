package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ademhatay/employee-qr-track/internal/auth"
	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/events"
	"github.com/ademhatay/employee-qr-track/internal/repository"
	"github.com/ademhatay/employee-qr-track/internal/session"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// AuthService coordinates staff registration, login, onboarding and kiosk
// login. It is the only writer of the session store: the guard reads what
// this service persists.
type AuthService struct {
	users      repository.UserRepository
	companies  repository.CompanyRepository
	employees  repository.EmployeeRepository
	sessions   session.Store
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates the service's collaborators.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	CompanyRepo  repository.CompanyRepository
	EmployeeRepo repository.EmployeeRepository
	Sessions     session.Store
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		companies:  deps.CompanyRepo,
		employees:  deps.EmployeeRepo,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterStaff creates a staff account and opens a session. A fresh
// account has no company yet, so the session lands in the
// authenticated-without-company state and the guard will steer it to
// onboarding for company-gated areas.
func (s *AuthService) RegisterStaff(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.NewConflict("email already registered", nil)
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRoleEmployee,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	sessionID, err := s.openStaffSession(ctx, user, nil)
	if err != nil {
		return nil, "", err
	}
	return user, sessionID, nil
}

// LoginStaff authenticates a staff member and opens a session. When the
// account already belongs to a company the session record carries it, so
// the requester lands straight in the authenticated-with-company state.
func (s *AuthService) LoginStaff(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("invalid credentials")
	}

	var company *domain.Company
	if user.CompanyID != nil {
		company, err = s.companies.GetByID(ctx, *user.CompanyID)
		if err != nil && err != pgx.ErrNoRows {
			return nil, "", err
		}
	}

	sessionID, err := s.openStaffSession(ctx, user, company)
	if err != nil {
		return nil, "", err
	}
	return user, sessionID, nil
}

// LogoutStaff destroys the staff session record.
func (s *AuthService) LogoutStaff(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.DeleteStaff(ctx, sessionID)
}

// CompleteOnboarding creates the company for the logged-in staff member,
// promotes them to owner and updates the session record in place so the
// very next navigation sees the company association.
func (s *AuthService) CompleteOnboarding(ctx context.Context, sessionID, companyName string) (*domain.Company, error) {
	rec, err := s.sessions.ReadStaff(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsAuthenticated || rec.User == nil {
		return nil, apperrors.NewUnauthorized("staff login required")
	}
	if rec.Company != nil {
		return nil, apperrors.NewConflict("onboarding already completed", nil)
	}
	if strings.TrimSpace(companyName) == "" {
		return nil, apperrors.NewValidationError("company name required", nil)
	}

	user, err := s.users.GetByID(ctx, rec.User.ID)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		Name:      companyName,
		Plan:      domain.CompanyPlanFree,
		KioskCode: newKioskCode(),
		OwnerID:   user.ID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	user.Role = domain.UserRoleOwner
	user.CompanyID = &company.ID
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.employees.Upsert(ctx, &domain.Employee{User: *user, IsActive: true}); err != nil {
		return nil, err
	}

	rec.User = toStaffUser(user)
	rec.Company = toStaffCompany(company)
	if err := s.sessions.WriteStaff(ctx, sessionID, rec); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCompanyOnboarded,
			CompanyID: company.ID,
			Timestamp: time.Now(),
			Payload: events.CompanyOnboardedPayload{
				CompanyName: company.Name,
				OwnerID:     user.ID,
				Plan:        company.Plan,
			},
		})
	}
	return company, nil
}

// LoginKiosk registers an unattended device against the company whose kiosk
// code it presents. The kiosk session is fully independent of any staff
// session held on the same device.
func (s *AuthService) LoginKiosk(ctx context.Context, kioskCode, deviceLabel string) (string, *session.KioskIdentity, error) {
	company, err := s.companies.GetByKioskCode(ctx, strings.TrimSpace(kioskCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil, apperrors.NewUnauthorized("invalid kiosk code")
		}
		return "", nil, err
	}
	if deviceLabel == "" {
		deviceLabel = "kiosk"
	}

	identity := &session.KioskIdentity{
		CompanyID:    company.ID,
		CompanyName:  company.Name,
		DeviceLabel:  deviceLabel,
		RegisteredAt: time.Now(),
	}
	sessionID := session.NewSessionID()
	if err := s.sessions.WriteKiosk(ctx, sessionID, &session.KioskSession{CurrentKiosk: identity}); err != nil {
		return "", nil, err
	}
	return sessionID, identity, nil
}

// LogoutKiosk destroys the kiosk session record.
func (s *AuthService) LogoutKiosk(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.DeleteKiosk(ctx, sessionID)
}

func (s *AuthService) openStaffSession(ctx context.Context, user *domain.User, company *domain.Company) (string, error) {
	rec := &session.StaffSession{
		IsAuthenticated: true,
		User:            toStaffUser(user),
	}
	if company != nil {
		rec.Company = toStaffCompany(company)
	}
	sessionID := session.NewSessionID()
	if err := s.sessions.WriteStaff(ctx, sessionID, rec); err != nil {
		return "", err
	}
	return sessionID, nil
}

func toStaffUser(user *domain.User) *session.StaffUser {
	return &session.StaffUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func toStaffCompany(company *domain.Company) *session.StaffCompany {
	return &session.StaffCompany{
		ID:        company.ID,
		Name:      company.Name,
		Plan:      company.Plan,
		KioskCode: company.KioskCode,
		OwnerID:   company.OwnerID,
		CreatedAt: company.CreatedAt,
	}
}

// newKioskCode mints the shared secret kiosk devices present at login.
func newKioskCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
