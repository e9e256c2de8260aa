package repositories

import (
	"testing"

	"vereinsbudget/internal/database"
	"vereinsbudget/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAllowanceRepository(t *testing.T) {
	suite.Run(t, new(AllowanceRepositorySuite))
}

type AllowanceRepositorySuite struct {
	suite.Suite
	db   *database.DB
	org  *models.Organization
	user *models.User
	repo AllowanceRepositoryInterface
}

func (s *AllowanceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.org = database.CreateTestOrganization(s.T(), s.db, "Musterverein e.V.")
	s.user = database.CreateTestUser(s.T(), s.db, s.org, "volunteer@example.com")
	s.repo = NewAllowanceRepository(s.db.DB)
}

func (s *AllowanceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AllowanceRepositorySuite) create(year int, amount string) *models.Allowance {
	allowance := &models.Allowance{
		OrganizationID: s.org.ID,
		UserID:         s.user.ID,
		Year:           year,
		Amount:         decimal.RequireFromString(amount),
	}
	s.Require().NoError(s.repo.Create(allowance))
	return allowance
}

func (s *AllowanceRepositorySuite) TestSumByUserAndYear() {
	s.create(2024, "300.00")
	s.create(2024, "200.00")
	s.create(2023, "840.00")

	sum, err := s.repo.SumByUserAndYear(s.user.ID, 2024)
	s.NoError(err)
	s.True(sum.Equal(decimal.RequireFromString("500.00")), "got %s", sum)

	sum, err = s.repo.SumByUserAndYear(s.user.ID, 2022)
	s.NoError(err)
	s.True(sum.IsZero())
}

func (s *AllowanceRepositorySuite) TestListByUserAndYear() {
	s.create(2024, "100.00")
	s.create(2024, "150.00")
	s.create(2023, "50.00")

	allowances, err := s.repo.ListByUserAndYear(s.user.ID, 2024)
	s.NoError(err)
	s.Len(allowances, 2)
}

func (s *AllowanceRepositorySuite) TestListByOrganization_YearFilter() {
	s.create(2024, "100.00")
	s.create(2023, "100.00")

	allowances, total, err := s.repo.ListByOrganization(s.org.ID, 2024, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(allowances, 1)

	// Year zero means all years
	_, total, err = s.repo.ListByOrganization(s.org.ID, 0, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *AllowanceRepositorySuite) TestDelete() {
	allowance := s.create(2024, "100.00")

	s.NoError(s.repo.Delete(allowance.ID))
	_, err := s.repo.GetByID(allowance.ID)
	s.ErrorIs(err, ErrAllowanceNotFound)
}
