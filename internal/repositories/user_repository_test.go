package repositories

import (
	"fmt"
	"testing"

	"vereinsbudget/internal/database"
	"vereinsbudget/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	org  *models.Organization
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.org = database.CreateTestOrganization(s.T(), s.db, "Musterverein e.V.")
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newUser(email string) *models.User {
	return &models.User{
		OrganizationID: s.org.ID,
		Email:          email,
		PasswordHash:   "hashed_password",
		FirstName:      "Test",
		LastName:       "User",
		Role:           models.RoleMember,
	}
}

func (s *UserRepositorySuite) TestCreate() {
	user := s.newUser("test@example.com")

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	s.NoError(s.repo.Create(s.newUser("dup@example.com")))

	err := s.repo.Create(s.newUser("dup@example.com"))
	s.ErrorIs(err, ErrDuplicateKey)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	user := s.newUser("kassier@example.com")
	s.NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("kassier@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	// Lookup is case-insensitive
	found, err = s.repo.GetByEmail("KASSIER@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("nonexistent@example.com")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateLastLogin() {
	user := s.newUser("login@example.com")
	s.NoError(s.repo.Create(user))
	s.Nil(user.LastLoginAt)

	s.NoError(s.repo.UpdateLastLogin(user.ID))

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.NotNil(found.LastLoginAt)
}

func (s *UserRepositorySuite) TestListByOrganization() {
	for i := 0; i < 3; i++ {
		s.NoError(s.repo.Create(s.newUser(fmt.Sprintf("member%d@example.com", i))))
	}

	otherOrg := database.CreateTestOrganization(s.T(), s.db, "Anderer Verein e.V.")
	other := s.newUser("other@example.com")
	other.OrganizationID = otherOrg.ID
	s.NoError(s.repo.Create(other))

	users, total, err := s.repo.ListByOrganization(s.org.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(users, 3)

	users, total, err = s.repo.ListByOrganization(s.org.ID, 0, 2)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(users, 2)
}

func (s *UserRepositorySuite) TestDelete() {
	user := s.newUser("gone@example.com")
	s.NoError(s.repo.Create(user))

	s.NoError(s.repo.Delete(user.ID))

	_, err := s.repo.GetByID(user.ID)
	s.ErrorIs(err, ErrUserNotFound)

	s.ErrorIs(s.repo.Delete(uuid.New()), ErrUserNotFound)
}
