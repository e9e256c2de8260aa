package database

import (
	"fmt"
	"testing"
	"time"

	"vereinsbudget/internal/config"
	"vereinsbudget/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestOrganization(t *testing.T, db *DB, name string) *models.Organization {
	t.Helper()

	org := &models.Organization{
		Name: name,
		IBAN: "DE02120300000000202051",
	}

	if err := db.Create(org).Error; err != nil {
		t.Fatalf("failed to create test organization: %v", err)
	}

	return org
}

func CreateTestUser(t *testing.T, db *DB, org *models.Organization, email string) *models.User {
	t.Helper()

	user := &models.User{
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   "hashed_password",
		FirstName:      "Test",
		LastName:       "User",
		Role:           models.RoleMember,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAdminUser(t *testing.T, db *DB, org *models.Organization, email string) *models.User {
	t.Helper()

	user := &models.User{
		OrganizationID: org.ID,
		Email:          email,
		PasswordHash:   "hashed_password",
		FirstName:      "Admin",
		LastName:       "User",
		Role:           models.RoleAdmin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test admin user: %v", err)
	}

	return user
}

func CreateTestTransaction(t *testing.T, db *DB, org *models.Organization, bookedAt time.Time, amount string, status string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		OrganizationID: org.ID,
		BookedAt:       bookedAt,
		Amount:         decimal.RequireFromString(amount),
		Status:         status,
		Description:    "test transaction",
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB: testDB,
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	for _, table := range testTables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// testTables is ordered so dependents are wiped before their parents.
var testTables = []string{
	"allowances",
	"reimbursements",
	"transactions",
	"donors",
	"categories",
	"projects",
	"users",
	"organizations",
}
