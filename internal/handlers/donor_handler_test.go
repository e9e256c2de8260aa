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

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestDonorHandler(t *testing.T) {
	suite.Run(t, new(DonorHandlerSuite))
}

type DonorHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	donorService *service_mocks.MockDonorServiceInterface
	handler      *DonorHandler
	e            *echo.Echo
	orgID        uuid.UUID
}

func (s *DonorHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.donorService = service_mocks.NewMockDonorServiceInterface(s.ctrl)
	s.handler = NewDonorHandler(s.donorService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
	s.orgID = uuid.New()
}

func (s *DonorHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DonorHandlerSuite) authedContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", uuid.New())
	c.Set("organization_id", s.orgID)
	return c, rec
}

func (s *DonorHandlerSuite) TestCreate() {
	name := gofakeit.Name()
	email := gofakeit.Email()

	s.donorService.EXPECT().
		CreateDonor(gomock.Any()).
		DoAndReturn(func(d *models.Donor) (*models.Donor, error) {
			s.Equal(s.orgID, d.OrganizationID)
			s.Equal(name, d.Name)
			s.Equal(email, d.Email)
			d.ID = uuid.New()
			return d, nil
		})

	c, rec := s.authedContext(http.MethodPost, "/api/v1/donors", dto.CreateDonorRequest{
		Name:  name,
		Email: email,
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.DonorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(name, response.Name)
}

func (s *DonorHandlerSuite) TestCreateInvalidEmail() {
	c, _ := s.authedContext(http.MethodPost, "/api/v1/donors", dto.CreateDonorRequest{
		Name:  gofakeit.Name(),
		Email: "keine-mailadresse",
	})

	s.Error(s.handler.Create(c))
}

func (s *DonorHandlerSuite) TestGetNotFound() {
	id := uuid.New()

	s.donorService.EXPECT().
		GetDonor(s.orgID, id).
		Return(nil, services.ErrDonorNotFound)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/donors/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("DONOR_001", response.Error.Code)
}

func (s *DonorHandlerSuite) TestList() {
	donors := []models.Donor{
		{ID: uuid.New(), OrganizationID: s.orgID, Name: gofakeit.Name()},
		{ID: uuid.New(), OrganizationID: s.orgID, Name: gofakeit.Company()},
	}

	s.donorService.EXPECT().
		ListDonors(s.orgID, 0, 50).
		Return(donors, int64(2), nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/donors", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListDonorsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Donors, 2)
}

func (s *DonorHandlerSuite) TestDeleteHidesForeignOrganization() {
	id := uuid.New()

	s.donorService.EXPECT().
		DeleteDonor(s.orgID, id).
		Return(services.ErrWrongOrganization)

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/donors/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
