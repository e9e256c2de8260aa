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
	"github.com/stretchr/testify/suite"
)

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	categoryService *service_mocks.MockCategoryServiceInterface
	handler         *CategoryHandler
	e               *echo.Echo
	orgID           uuid.UUID
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.categoryService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
	s.orgID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) authedContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *CategoryHandlerSuite) TestCreate() {
	s.categoryService.EXPECT().
		CreateCategory(gomock.Any()).
		DoAndReturn(func(cat *models.Category) (*models.Category, error) {
			s.Equal(s.orgID, cat.OrganizationID)
			s.Equal("Mitgliedsbeiträge", cat.Name)
			s.Equal(models.CategoryKindIncome, cat.Kind)
			cat.ID = uuid.New()
			return cat, nil
		})

	c, rec := s.authedContext(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{
		Name: "Mitgliedsbeiträge",
		Kind: "income",
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.CategoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Mitgliedsbeiträge", response.Name)
	s.Equal("income", response.Kind)
}

func (s *CategoryHandlerSuite) TestCreateInvalidKind() {
	c, _ := s.authedContext(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{
		Name: "Sonstiges",
		Kind: "mixed",
	})

	s.Error(s.handler.Create(c))
}

func (s *CategoryHandlerSuite) TestList() {
	categories := []models.Category{
		{ID: uuid.New(), OrganizationID: s.orgID, Name: "Spenden", Kind: models.CategoryKindIncome},
		{ID: uuid.New(), OrganizationID: s.orgID, Name: "Miete", Kind: models.CategoryKindExpense},
	}

	s.categoryService.EXPECT().
		ListCategories(s.orgID).
		Return(categories, nil)

	c, rec := s.authedContext(http.MethodGet, "/api/v1/categories", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListCategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Categories, 2)
}

func (s *CategoryHandlerSuite) TestUpdateNotFound() {
	id := uuid.New()

	s.categoryService.EXPECT().
		UpdateCategory(s.orgID, gomock.Any()).
		Return(nil, services.ErrCategoryNotFound)

	c, rec := s.authedContext(http.MethodPut, "/api/v1/categories/"+id.String(), dto.UpdateCategoryRequest{
		Name: "Spenden",
		Kind: "income",
	})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CATEGORY_001", response.Error.Code)
}

func (s *CategoryHandlerSuite) TestDelete() {
	id := uuid.New()

	s.categoryService.EXPECT().
		DeleteCategory(s.orgID, id).
		Return(nil)

	c, rec := s.authedContext(http.MethodDelete, "/api/v1/categories/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
