package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(4) // MinCost keeps the suite fast
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Valid() {
	s.NoError(s.service.ValidatePassword("vereinskasse2024"))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Empty() {
	s.ErrorIs(s.service.ValidatePassword(""), ErrPasswordEmpty)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	s.ErrorIs(s.service.ValidatePassword("kurz123"), ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	s.ErrorIs(s.service.ValidatePassword(strings.Repeat("a1", 40)), ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_NoLetter() {
	s.ErrorIs(s.service.ValidatePassword("1234567890"), ErrPasswordNoLetter)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_NoNumber() {
	s.ErrorIs(s.service.ValidatePassword("nurbuchstaben"), ErrPasswordNoNumber)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_WithSpaces() {
	s.NoError(s.service.ValidatePassword("drei worte 42"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_Valid() {
	hash, err := s.service.HashPassword("vereinskasse2024")
	s.Require().NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("vereinskasse2024", hash)
	s.True(strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$"))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsInvalid() {
	hash, err := s.service.HashPassword("kurz")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword_Roundtrip() {
	hash, err := s.service.HashPassword("vereinskasse2024")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("vereinskasse2024", hash))
	s.False(s.service.ComparePassword("vereinskasse2025", hash))
	s.False(s.service.ComparePassword("", hash))
}

func (s *PasswordServiceTestSuite) TestComparePassword_InvalidHash() {
	s.False(s.service.ComparePassword("vereinskasse2024", "kein-bcrypt-hash"))
}

func (s *PasswordServiceTestSuite) TestHashUniqueness() {
	hash1, err := s.service.HashPassword("vereinskasse2024")
	s.Require().NoError(err)
	hash2, err := s.service.HashPassword("vereinskasse2024")
	s.Require().NoError(err)

	// Same password salts differently
	s.NotEqual(hash1, hash2)
	s.True(s.service.ComparePassword("vereinskasse2024", hash1))
	s.True(s.service.ComparePassword("vereinskasse2024", hash2))
}

func (s *PasswordServiceTestSuite) TestNewPasswordService_ClampsCost() {
	service := NewPasswordService(99)
	hash, err := service.HashPassword("vereinskasse2024")
	s.NoError(err)
	s.NotEmpty(hash)
}
