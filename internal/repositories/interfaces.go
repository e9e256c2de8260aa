package repositories

import (
	"time"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrganizationRepositoryInterface defines the contract for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	Update(org *models.Organization) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID) error
	ListByOrganization(orgID uuid.UUID, offset, limit int) ([]*models.User, int64, error)
	Delete(userID uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(orgID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	ListImportedIDs(orgID uuid.UUID) ([]string, error)
	Update(transaction *models.Transaction) error
	UpdateStatus(id uuid.UUID, status string) error
	Delete(id uuid.UUID) error
	SumBefore(orgID uuid.UUID, before time.Time, status string) (decimal.Decimal, error)
	GetProjectTotals(projectID uuid.UUID) (*models.ProjectTotals, error)
	GetCategorySummary(orgID uuid.UUID, start, end time.Time) ([]models.CategorySummary, error)
}

// ProjectRepositoryInterface defines the contract for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	ListByOrganization(orgID uuid.UUID, status string, offset, limit int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// DonorRepositoryInterface defines the contract for donor repository operations
type DonorRepositoryInterface interface {
	Create(donor *models.Donor) error
	GetByID(id uuid.UUID) (*models.Donor, error)
	ListByOrganization(orgID uuid.UUID, offset, limit int) ([]models.Donor, int64, error)
	Update(donor *models.Donor) error
	Delete(id uuid.UUID) error
}

// ReimbursementRepositoryInterface defines the contract for reimbursement repository operations
type ReimbursementRepositoryInterface interface {
	Create(reimbursement *models.Reimbursement) error
	GetByID(id uuid.UUID) (*models.Reimbursement, error)
	ListByOrganization(orgID uuid.UUID, status string, offset, limit int) ([]models.Reimbursement, int64, error)
	ListByUser(userID uuid.UUID, offset, limit int) ([]models.Reimbursement, int64, error)
	Update(reimbursement *models.Reimbursement) error
}

// AllowanceRepositoryInterface defines the contract for allowance repository operations
type AllowanceRepositoryInterface interface {
	Create(allowance *models.Allowance) error
	GetByID(id uuid.UUID) (*models.Allowance, error)
	ListByUserAndYear(userID uuid.UUID, year int) ([]models.Allowance, error)
	SumByUserAndYear(userID uuid.UUID, year int) (decimal.Decimal, error)
	ListByOrganization(orgID uuid.UUID, year int, offset, limit int) ([]models.Allowance, int64, error)
	Delete(id uuid.UUID) error
}
