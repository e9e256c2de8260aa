package services

import (
	"testing"
	"time"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"
	"vereinsbudget/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userRepo     *repository_mocks.MockUserRepositoryInterface
	orgRepo      *repository_mocks.MockOrganizationRepositoryInterface
	passwordSvc  PasswordServiceInterface
	tokenService *fakeTokenService
	service      AuthServiceInterface
}

// fakeTokenService avoids RSA key generation in every test run.
type fakeTokenService struct {
	token     string
	expiresAt time.Time
	err       error
}

func (f *fakeTokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	return f.token, f.expiresAt, f.err
}

func (f *fakeTokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	return nil, ErrInvalidToken
}

func (f *fakeTokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	return authHeader, nil
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.orgRepo = repository_mocks.NewMockOrganizationRepositoryInterface(s.ctrl)
	s.passwordSvc = NewPasswordService(4) // MinCost keeps the suite fast
	s.tokenService = &fakeTokenService{
		token:     "signed-token",
		expiresAt: time.Now().Add(time.Hour),
	}
	s.service = NewAuthService(s.userRepo, s.orgRepo, s.passwordSvc, s.tokenService, newTestLogger())
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) TestRegister_CreatesOrganizationAndAdmin() {
	s.orgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = uuid.New()
		return nil
	})

	var created *models.User
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		created = user
		return nil
	})

	user, err := s.service.Register("Musterverein e.V.", "vorstand@verein.de", "sehr-geheim-123", "Erika", "Muster")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, user.Role)
	s.NotEqual(uuid.Nil, user.OrganizationID)
	s.Require().NotNil(created)
	s.NotEqual("sehr-geheim-123", created.PasswordHash)
	s.True(s.passwordSvc.ComparePassword("sehr-geheim-123", created.PasswordHash))
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	_, err := s.service.Register("Verein", "a@b.de", "kurz1", "E", "M")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	s.orgRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrDuplicateKey)

	_, err := s.service.Register("Verein", "vorstand@verein.de", "sehr-geheim-123", "E", "M")
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	hash, err := s.passwordSvc.HashPassword("sehr-geheim-123")
	s.Require().NoError(err)

	user := &models.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "vorstand@verein.de",
		PasswordHash:   hash,
		Role:           models.RoleAdmin,
	}
	s.userRepo.EXPECT().GetByEmail("vorstand@verein.de").Return(user, nil)
	s.userRepo.EXPECT().UpdateLastLogin(user.ID).Return(nil)

	result, err := s.service.Login("vorstand@verein.de", "sehr-geheim-123")
	s.Require().NoError(err)
	s.Equal("signed-token", result.Token)
	s.Equal(user.ID, result.User.ID)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := s.passwordSvc.HashPassword("sehr-geheim-123")
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByEmail("vorstand@verein.de").Return(&models.User{
		ID:           uuid.New(),
		PasswordHash: hash,
	}, nil)

	_, err = s.service.Login("vorstand@verein.de", "falsches-passwort-9")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmailSameError() {
	s.userRepo.EXPECT().GetByEmail("niemand@verein.de").Return(nil, repositories.ErrUserNotFound)

	_, err := s.service.Login("niemand@verein.de", "egal-egal-123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestAddMember_Success() {
	orgID := uuid.New()
	s.orgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{ID: orgID}, nil)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil)

	user, err := s.service.AddMember(orgID, "kassier@verein.de", "sehr-geheim-123", "Hans", "Wurst", models.RoleMember)
	s.Require().NoError(err)
	s.Equal(models.RoleMember, user.Role)
	s.Equal(orgID, user.OrganizationID)
}

func (s *AuthServiceTestSuite) TestAddMember_InvalidRole() {
	_, err := s.service.AddMember(uuid.New(), "x@y.de", "sehr-geheim-123", "H", "W", "superuser")
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *AuthServiceTestSuite) TestAddMember_OrganizationMissing() {
	orgID := uuid.New()
	s.orgRepo.EXPECT().GetByID(orgID).Return(nil, repositories.ErrOrganizationNotFound)

	_, err := s.service.AddMember(orgID, "x@y.de", "sehr-geheim-123", "H", "W", models.RoleMember)
	s.ErrorIs(err, ErrOrganizationMissing)
}
