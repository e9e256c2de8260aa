package database

import (
	"fmt"
	"log"
	"time"

	"vereinsbudget/internal/config"
	"vereinsbudget/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Project{},
		&models.Category{},
		&models.Donor{},
		&models.Transaction{},
		&models.Reimbursement{},
		&models.Allowance{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_organization_id ON users(organization_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		// Transaction indexes: date range scans dominate cashflow queries
		"CREATE INDEX IF NOT EXISTS idx_transactions_organization_id ON transactions(organization_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_org_booked_at ON transactions(organization_id, booked_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_project_id ON transactions(project_id) WHERE project_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id) WHERE category_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_donor_id ON transactions(donor_id) WHERE donor_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_import_source ON transactions(import_source) WHERE import_source IS NOT NULL",
		// Project and category indexes
		"CREATE INDEX IF NOT EXISTS idx_projects_organization_id ON projects(organization_id)",
		"CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)",
		"CREATE INDEX IF NOT EXISTS idx_categories_organization_id ON categories(organization_id)",
		"CREATE INDEX IF NOT EXISTS idx_donors_organization_id ON donors(organization_id)",
		// Reimbursement indexes
		"CREATE INDEX IF NOT EXISTS idx_reimbursements_organization_id ON reimbursements(organization_id)",
		"CREATE INDEX IF NOT EXISTS idx_reimbursements_user_id ON reimbursements(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_reimbursements_status ON reimbursements(status)",
		// Allowance indexes: cap check aggregates by user and year
		"CREATE INDEX IF NOT EXISTS idx_allowances_user_year ON allowances(user_id, year)",
		"CREATE INDEX IF NOT EXISTS idx_allowances_organization_id ON allowances(organization_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

func (db *DB) SeedAdminUser(orgID string, email, passwordHash, firstName, lastName string) (*models.User, error) {
	var existingUser models.User
	if err := db.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		return &existingUser, nil
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleAdmin,
	}
	if err := user.OrganizationID.UnmarshalText([]byte(orgID)); err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	if err := db.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	return user, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
