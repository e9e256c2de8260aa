package services

import (
	"io"
	"time"

	"vereinsbudget/internal/bankimport"
	"vereinsbudget/internal/cashflow"
	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportServiceInterface defines bank-statement import operations
type ImportServiceInterface interface {
	ImportStatement(orgID uuid.UUID, source bankimport.Source, reader io.Reader) (*ImportResult, error)
	PreviewStatement(source bankimport.Source, reader io.Reader) ([]bankimport.TransactionData, error)
}

// CashflowServiceInterface defines cashflow chart operations
type CashflowServiceInterface interface {
	GetCashflow(orgID uuid.UUID, rangeStart, rangeEnd time.Time) (*CashflowResult, error)
}

// TransactionServiceInterface defines transaction business operations
type TransactionServiceInterface interface {
	CreateTransaction(txn *models.Transaction) (*models.Transaction, error)
	GetTransaction(orgID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(orgID uuid.UUID, txn *models.Transaction) (*models.Transaction, error)
	Categorize(orgID, txnID uuid.UUID, categoryID, projectID, donorID *uuid.UUID) (*models.Transaction, error)
	MarkProcessed(orgID, txnID uuid.UUID) error
	DeleteTransaction(orgID, id uuid.UUID) error
	GetCategorySummary(orgID uuid.UUID, start, end time.Time) ([]models.CategorySummary, error)
}

// ProjectServiceInterface defines project budget operations
type ProjectServiceInterface interface {
	CreateProject(project *models.Project) (*models.Project, error)
	GetProject(orgID, id uuid.UUID) (*models.Project, error)
	GetProjectWithTotals(orgID, id uuid.UUID) (*models.Project, *models.ProjectTotals, error)
	ListProjects(orgID uuid.UUID, status string, offset, limit int) ([]models.Project, int64, error)
	UpdateProject(orgID uuid.UUID, project *models.Project) (*models.Project, error)
	ArchiveProject(orgID, id uuid.UUID) error
	DeleteProject(orgID, id uuid.UUID) error
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(category *models.Category) (*models.Category, error)
	GetCategory(orgID, id uuid.UUID) (*models.Category, error)
	ListCategories(orgID uuid.UUID) ([]models.Category, error)
	UpdateCategory(orgID uuid.UUID, category *models.Category) (*models.Category, error)
	DeleteCategory(orgID, id uuid.UUID) error
}

// DonorServiceInterface defines donor management operations
type DonorServiceInterface interface {
	CreateDonor(donor *models.Donor) (*models.Donor, error)
	GetDonor(orgID, id uuid.UUID) (*models.Donor, error)
	ListDonors(orgID uuid.UUID, offset, limit int) ([]models.Donor, int64, error)
	UpdateDonor(orgID uuid.UUID, donor *models.Donor) (*models.Donor, error)
	DeleteDonor(orgID, id uuid.UUID) error
}

// ReimbursementServiceInterface defines the reimbursement workflow
type ReimbursementServiceInterface interface {
	Submit(reimbursement *models.Reimbursement) (*models.Reimbursement, error)
	Get(orgID, id uuid.UUID) (*models.Reimbursement, error)
	List(orgID uuid.UUID, status string, offset, limit int) ([]models.Reimbursement, int64, error)
	ListForUser(userID uuid.UUID, offset, limit int) ([]models.Reimbursement, int64, error)
	Approve(orgID, id, decidedBy uuid.UUID, note string) (*models.Reimbursement, error)
	Reject(orgID, id, decidedBy uuid.UUID, note string) (*models.Reimbursement, error)
	MarkPaid(orgID, id uuid.UUID) (*models.Reimbursement, error)
}

// AllowanceServiceInterface defines volunteer allowance operations
type AllowanceServiceInterface interface {
	GrantAllowance(allowance *models.Allowance) (*models.Allowance, error)
	RemainingBudget(userID uuid.UUID, year int) (decimal.Decimal, error)
	ListByOrganization(orgID uuid.UUID, year, offset, limit int) ([]models.Allowance, int64, error)
	RevokeAllowance(orgID, id uuid.UUID) error
}

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	Register(orgName, email, password, firstName, lastName string) (*models.User, error)
	Login(email, password string) (*LoginResult, error)
	AddMember(orgID uuid.UUID, email, password, firstName, lastName, role string) (*models.User, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// TokenServiceInterface defines JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface defines the application metrics surface
type MetricsRecorderInterface interface {
	RecordImport(source string, imported, skipped int, duration time.Duration)
	RecordImportError(source, reason string)
	RecordCashflowRequest(bucket string, duration time.Duration)
	RecordTransactionCreated(origin string)
	RecordReimbursementTransition(status string)
	RecordAllowanceGranted()
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// ImportResult summarizes one statement import.
type ImportResult struct {
	Imported     int                 `json:"imported"`
	Skipped      int                 `json:"skipped"`
	Transactions []models.Transaction `json:"transactions"`
}

// CashflowResult is the chart payload: the series plus axis scaling.
type CashflowResult struct {
	Points []cashflow.DataPoint `json:"points"`
	Axis   cashflow.AxisConfig  `json:"axis"`
}

// LoginResult bundles the issued token with its user.
type LoginResult struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}
