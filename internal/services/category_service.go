package services

import (
	"errors"
	"log/slog"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) CreateCategory(category *models.Category) (*models.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	s.logger.Info("category created", "category_id", category.ID, "organization_id", category.OrganizationID)
	return category, nil
}

func (s *categoryService) GetCategory(orgID, id uuid.UUID) (*models.Category, error) {
	return s.getScoped(orgID, id)
}

func (s *categoryService) ListCategories(orgID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.ListByOrganization(orgID)
}

func (s *categoryService) UpdateCategory(orgID uuid.UUID, category *models.Category) (*models.Category, error) {
	existing, err := s.getScoped(orgID, category.ID)
	if err != nil {
		return nil, err
	}

	category.OrganizationID = existing.OrganizationID
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(category.ID)
}

func (s *categoryService) DeleteCategory(orgID, id uuid.UUID) error {
	if _, err := s.getScoped(orgID, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

func (s *categoryService) getScoped(orgID, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if category.OrganizationID != orgID {
		return nil, ErrWrongOrganization
	}
	return category, nil
}
