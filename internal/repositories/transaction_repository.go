package repositories

import (
	"errors"
	"fmt"
	"time"

	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.OrganizationID != uuid.Nil {
		query = query.Where("organization_id = ?", filters.OrganizationID)
	}
	if filters.ProjectID != nil {
		query = query.Where("project_id = ?", *filters.ProjectID)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.DonorID != nil {
		query = query.Where("donor_id = ?", *filters.DonorID)
	}
	if filters.StartDate != nil {
		query = query.Where("booked_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("booked_at < ?", *filters.EndDate)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.ImportSource != "" {
		query = query.Where("import_source = ?", filters.ImportSource)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("description LIKE ? OR counterparty LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if filters.Limit <= 0 {
		filters.Limit = 50
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("booked_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByDateRange retrieves an organization's transactions in the half-open
// interval [start, end), ordered by booking date.
func (r *transactionRepository) GetByDateRange(orgID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("organization_id = ? AND booked_at >= ? AND booked_at < ?", orgID, start, end).
		Order("booked_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// ListImportedIDs returns every non-null imported transaction ID of an
// organization, for duplicate detection before a bank-statement import.
func (r *transactionRepository) ListImportedIDs(orgID uuid.UUID) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.Transaction{}).
		Where("organization_id = ? AND imported_transaction_id IS NOT NULL", orgID).
		Pluck("imported_transaction_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list imported transaction IDs: %w", err)
	}
	return ids, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{ID: transaction.ID}).Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// UpdateStatus updates the status of a transaction
func (r *transactionRepository) UpdateStatus(id uuid.UUID, status string) error {
	// Validation hooks need the full row; a bare status flip must not
	// load it first, so hooks are skipped here.
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// SumBefore sums transaction amounts booked strictly before the given
// instant. An empty status sums across all statuses.
func (r *transactionRepository) SumBefore(orgID uuid.UUID, before time.Time, status string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("organization_id = ? AND booked_at < ?", orgID, before)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return result.Total, nil
}

// GetProjectTotals aggregates a project's income and expenses split by status.
func (r *transactionRepository) GetProjectTotals(projectID uuid.UUID) (*models.ProjectTotals, error) {
	totals := &models.ProjectTotals{ProjectID: projectID}

	rows := []struct {
		Status string
		Income decimal.Decimal
		Spent  decimal.Decimal
	}{}

	query := `
		SELECT
			status,
			COALESCE(SUM(CASE WHEN amount >= 0 THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) as spent
		FROM transactions
		WHERE project_id = ?
		GROUP BY status
	`

	if err := r.db.Raw(query, projectID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get project totals: %w", err)
	}

	for _, row := range rows {
		switch row.Status {
		case models.TransactionStatusProcessed:
			totals.ActualIncome = row.Income
			totals.ActualExpenses = row.Spent
		case models.TransactionStatusExpected:
			totals.ExpectedIncome = row.Income
			totals.ExpectedExpense = row.Spent
		}
	}

	return totals, nil
}

// GetCategorySummary retrieves transaction summary grouped by category
func (r *transactionRepository) GetCategorySummary(orgID uuid.UUID, start, end time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			c.id as category_id,
			COALESCE(c.name, 'Unkategorisiert') as category_name,
			COUNT(t.id) as transaction_count,
			COALESCE(SUM(t.amount), 0) as total_amount
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.organization_id = ?
			AND t.booked_at >= ? AND t.booked_at < ?
		GROUP BY c.id, c.name
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, orgID, start, end).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}
