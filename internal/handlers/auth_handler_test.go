package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"
	"vereinsbudget/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) newJSONContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) TestRegister() {
	orgID := uuid.New()
	user := &models.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          "kasse@musikverein.example",
		FirstName:      "Anna",
		LastName:       "Berger",
		Role:           models.RoleAdmin,
		CreatedAt:      time.Now(),
	}

	s.authService.EXPECT().
		Register("Musikverein Harmonie", "kasse@musikverein.example", "treasury2024", "Anna", "Berger").
		Return(user, nil)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		OrganizationName: "Musikverein Harmonie",
		Email:            "kasse@musikverein.example",
		Password:         "treasury2024",
		FirstName:        "Anna",
		LastName:         "Berger",
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)
}

func (s *AuthHandlerSuite) TestRegisterEmailTaken() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrEmailTaken)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		OrganizationName: gofakeit.Company(),
		Email:            gofakeit.Email(),
		Password:         "treasury2024",
		FirstName:        gofakeit.FirstName(),
		LastName:         gofakeit.LastName(),
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("USER_002", response.Error.Code)
}

func (s *AuthHandlerSuite) TestRegisterWeakPassword() {
	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrPasswordNoNumber)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		OrganizationName: gofakeit.Company(),
		Email:            gofakeit.Email(),
		Password:         "lettersonly",
		FirstName:        gofakeit.FirstName(),
		LastName:         gofakeit.LastName(),
	})

	s.NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerSuite) TestRegisterMissingFields() {
	c, _ := s.newJSONContext(http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email: "kasse@musikverein.example",
	})

	err := s.handler.Register(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestLogin() {
	user := &models.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "kasse@musikverein.example",
		Role:           models.RoleAdmin,
	}
	expiresAt := time.Now().Add(15 * time.Minute)

	s.authService.EXPECT().
		Login("kasse@musikverein.example", "treasury2024").
		Return(&services.LoginResult{User: user, Token: "signed.jwt.token", ExpiresAt: expiresAt}, nil)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "kasse@musikverein.example",
		Password: "treasury2024",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.LoginResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("signed.jwt.token", response.Token.AccessToken)
	s.Equal("Bearer", response.Token.TokenType)
	s.Equal(user.Email, response.User.Email)
}

func (s *AuthHandlerSuite) TestLoginInvalidCredentials() {
	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    gofakeit.Email(),
		Password: "wrongpass1",
	})

	s.NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("AUTH_001", response.Error.Code)
}

func (s *AuthHandlerSuite) TestAddMember() {
	orgID := uuid.New()
	member := &models.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          "helfer@musikverein.example",
		Role:           models.RoleMember,
	}

	s.authService.EXPECT().
		AddMember(orgID, "helfer@musikverein.example", "helfer2024", "Jonas", "Keller", "member").
		Return(member, nil)

	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/members", dto.AddMemberRequest{
		Email:     "helfer@musikverein.example",
		Password:  "helfer2024",
		FirstName: "Jonas",
		LastName:  "Keller",
		Role:      "member",
	})
	c.Set("user_id", uuid.New())
	c.Set("organization_id", orgID)
	c.Set("is_admin", true)

	s.NoError(s.handler.AddMember(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *AuthHandlerSuite) TestAddMemberRequiresAdmin() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/members", dto.AddMemberRequest{
		Email:     gofakeit.Email(),
		Password:  "helfer2024",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Role:      "member",
	})
	c.Set("user_id", uuid.New())
	c.Set("organization_id", uuid.New())
	c.Set("is_admin", false)

	s.NoError(s.handler.AddMember(c))
	s.Equal(http.StatusForbidden, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("AUTH_005", response.Error.Code)
}

func (s *AuthHandlerSuite) TestAddMemberMissingAuthContext() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/members", dto.AddMemberRequest{
		Email:     gofakeit.Email(),
		Password:  "helfer2024",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Role:      "member",
	})

	s.NoError(s.handler.AddMember(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
