package services

import (
	"errors"
	"log/slog"

	"vereinsbudget/internal/models"
	"vereinsbudget/internal/repositories"

	"github.com/google/uuid"
)

var ErrProjectArchived = errors.New("project is archived")

// projectService implements ProjectServiceInterface
type projectService struct {
	projectRepo     repositories.ProjectRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewProjectService creates a project budget service
func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) ProjectServiceInterface {
	return &projectService{
		projectRepo:     projectRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

func (s *projectService) CreateProject(project *models.Project) (*models.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	s.logger.Info("project created", "project_id", project.ID, "organization_id", project.OrganizationID)
	return project, nil
}

func (s *projectService) GetProject(orgID, id uuid.UUID) (*models.Project, error) {
	return s.getScoped(orgID, id)
}

// GetProjectWithTotals returns a project together with its booked and
// expected income and spending, for budget-versus-actuals views.
func (s *projectService) GetProjectWithTotals(orgID, id uuid.UUID) (*models.Project, *models.ProjectTotals, error) {
	project, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.transactionRepo.GetProjectTotals(id)
	if err != nil {
		return nil, nil, err
	}
	return project, totals, nil
}

func (s *projectService) ListProjects(orgID uuid.UUID, status string, offset, limit int) ([]models.Project, int64, error) {
	return s.projectRepo.ListByOrganization(orgID, status, offset, limit)
}

func (s *projectService) UpdateProject(orgID uuid.UUID, project *models.Project) (*models.Project, error) {
	existing, err := s.getScoped(orgID, project.ID)
	if err != nil {
		return nil, err
	}
	if !existing.IsActive() {
		return nil, ErrProjectArchived
	}

	project.OrganizationID = existing.OrganizationID
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByID(project.ID)
}

func (s *projectService) ArchiveProject(orgID, id uuid.UUID) error {
	project, err := s.getScoped(orgID, id)
	if err != nil {
		return err
	}

	project.Status = models.ProjectStatusArchived
	return s.projectRepo.Update(project)
}

func (s *projectService) DeleteProject(orgID, id uuid.UUID) error {
	if _, err := s.getScoped(orgID, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(id)
}

func (s *projectService) getScoped(orgID, id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.OrganizationID != orgID {
		return nil, ErrWrongOrganization
	}
	return project, nil
}
