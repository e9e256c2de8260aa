package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

// authService implements AuthServiceInterface
type authService struct {
	userRepo        repositories.UserRepositoryInterface
	orgRepo         repositories.OrganizationRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	logger          *slog.Logger
}

// NewAuthService creates an authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	orgRepo repositories.OrganizationRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &authService{
		userRepo:        userRepo,
		orgRepo:         orgRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Register creates a new organization together with its first admin user.
func (s *authService) Register(orgName, email, password, firstName, lastName string) (*models.User, error) {
	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{Name: strings.TrimSpace(orgName)}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	user := &models.User{
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   hash,
		FirstName:      firstName,
		LastName:       lastName,
		Role:           models.RoleAdmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("organization registered",
		"organization_id", org.ID,
		"admin_user_id", user.ID,
	)
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *authService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password, so probes can't enumerate accounts
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordService.ComparePassword(password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		s.logger.Warn("failed to stamp last login", "user_id", user.ID, "error", err)
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// AddMember creates an additional user inside an existing organization.
func (s *authService) AddMember(orgID uuid.UUID, email, password, firstName, lastName, role string) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleMember {
		return nil, ErrInvalidRole
	}

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, repositories.ErrOrganizationNotFound) {
			return nil, ErrOrganizationMissing
		}
		return nil, err
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		OrganizationID: orgID,
		Email:          email,
		PasswordHash:   hash,
		FirstName:      firstName,
		LastName:       lastName,
		Role:           role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("member added", "organization_id", orgID, "user_id", user.ID, "role", role)
	return user, nil
}
