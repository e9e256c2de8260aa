package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vereinsbudget/internal/dto"
	"vereinsbudget/internal/models"
	"vereinsbudget/internal/services"
	"vereinsbudget/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAllowanceHandler(t *testing.T) {
	suite.Run(t, new(AllowanceHandlerSuite))
}

type AllowanceHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	allowanceService *service_mocks.MockAllowanceServiceInterface
	handler          *AllowanceHandler
	e                *echo.Echo
	orgID            uuid.UUID
}

func (s *AllowanceHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.allowanceService = service_mocks.NewMockAllowanceServiceInterface(s.ctrl)
	s.handler = NewAllowanceHandler(s.allowanceService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
	s.orgID = uuid.New()
}

func (s *AllowanceHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AllowanceHandlerSuite) authedContext(method, path string, body interface{}, isAdmin bool) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("organization_id", s.orgID)
	c.Set("is_admin", isAdmin)
	return c, rec
}

func (s *AllowanceHandlerSuite) TestGrant() {
	volunteerID := uuid.New()

	s.allowanceService.EXPECT().
		GrantAllowance(gomock.Any()).
		DoAndReturn(func(a *models.Allowance) (*models.Allowance, error) {
			s.Equal(s.orgID, a.OrganizationID)
			s.Equal(volunteerID, a.UserID)
			s.Equal(2024, a.Year)
			s.True(a.Amount.Equal(decimal.NewFromFloat(300)))
			a.ID = uuid.New()
			return a, nil
		})

	c, rec := s.authedContext(http.MethodPost, "/api/v1/allowances", dto.GrantAllowanceRequest{
		UserID: volunteerID,
		Year:   2024,
		Amount: "300",
		Note:   "Jugendarbeit Frühjahr",
	}, true)

	s.NoError(s.handler.Grant(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.AllowanceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(volunteerID, response.UserID)
	s.Equal("300.00", response.Amount)
}

func (s *AllowanceHandlerSuite) TestGrantRequiresAdmin() {
	c, rec := s.authedContext(http.MethodPost, "/api/v1/allowances", dto.GrantAllowanceRequest{
		UserID: uuid.New(),
		Amount: "300",
	}, false)

	s.NoError(s.handler.Grant(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AllowanceHandlerSuite) TestGrantCapExceeded() {
	s.allowanceService.EXPECT().
		GrantAllowance(gomock.Any()).
		Return(nil, services.ErrAllowanceCapExceeded)

	c, rec := s.authedContext(http.MethodPost, "/api/v1/allowances", dto.GrantAllowanceRequest{
		UserID: uuid.New(),
		Year:   2024,
		Amount: "600",
	}, true)

	s.NoError(s.handler.Grant(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ALLOWANCE_001", response.Error.Code)
}

func (s *AllowanceHandlerSuite) TestGrantUnknownUser() {
	s.allowanceService.EXPECT().
		GrantAllowance(gomock.Any()).
		Return(nil, services.ErrUserNotFound)

	c, rec := s.authedContext(http.MethodPost, "/api/v1/allowances", dto.GrantAllowanceRequest{
		UserID: uuid.New(),
		Amount: "100",
	}, true)

	s.NoError(s.handler.Grant(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AllowanceHandlerSuite) TestRemaining() {
	volunteerID := uuid.New()

	s.allowanceService.EXPECT().
		RemainingBudget(volunteerID, 2024).
		Return(decimal.NewFromFloat(240), nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/allowances/remaining/"+volunteerID.String()+"?year=2024", nil, false)
	c.SetParamNames("userId")
	c.SetParamValues(volunteerID.String())

	s.NoError(s.handler.Remaining(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.RemainingAllowanceResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("240.00", response.Remaining)
	s.Equal(2024, response.Year)
}

func (s *AllowanceHandlerSuite) TestList() {
	allowances := []models.Allowance{{
		ID:             uuid.New(),
		OrganizationID: s.orgID,
		UserID:         uuid.New(),
		Year:           2024,
		Amount:         decimal.NewFromFloat(200),
	}}

	s.allowanceService.EXPECT().
		ListByOrganization(s.orgID, 2024, 0, 50).
		Return(allowances, int64(1), nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/allowances?year=2024", nil, false)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListAllowancesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Allowances, 1)
}

func (s *AllowanceHandlerSuite) TestRevoke() {
	id := uuid.New()

	s.allowanceService.EXPECT().
		RevokeAllowance(s.orgID, id).
		Return(nil)

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/allowances/"+id.String(), nil, true)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Revoke(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AllowanceHandlerSuite) TestRevokeNotFound() {
	id := uuid.New()

	s.allowanceService.EXPECT().
		RevokeAllowance(s.orgID, id).
		Return(services.ErrAllowanceNotFound)

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/allowances/"+id.String(), nil, true)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Revoke(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ALLOWANCE_003", response.Error.Code)
}

func (s *AllowanceHandlerSuite) TestRevokeRequiresAdmin() {
	id := uuid.New()

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/allowances/"+id.String(), nil, false)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Revoke(c))
	s.Equal(http.StatusForbidden, rec.Code)
}
