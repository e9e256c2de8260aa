package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestValidator(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

type ValidatorSuite struct {
	suite.Suite
	v *Validator
}

func (s *ValidatorSuite) SetupSuite() {
	s.v = NewValidator()
}

func (s *ValidatorSuite) TestImportSource() {
	type req struct {
		Source string `validate:"import_source"`
	}

	s.NoError(s.v.GetValidate().Struct(req{Source: "moss"}))
	s.NoError(s.v.GetValidate().Struct(req{Source: "Sparkasse"}))
	s.NoError(s.v.GetValidate().Struct(req{Source: "volksbank"}))
	s.Error(s.v.GetValidate().Struct(req{Source: "paypal"}))
	s.Error(s.v.GetValidate().Struct(req{Source: ""}))
}

func (s *ValidatorSuite) TestTransactionStatus() {
	type req struct {
		Status string `validate:"transaction_status"`
	}

	s.NoError(s.v.GetValidate().Struct(req{Status: "expected"}))
	s.NoError(s.v.GetValidate().Struct(req{Status: "processed"}))
	s.Error(s.v.GetValidate().Struct(req{Status: "pending"}))
}

func (s *ValidatorSuite) TestCategoryKind() {
	type req struct {
		Kind string `validate:"category_kind"`
	}

	s.NoError(s.v.GetValidate().Struct(req{Kind: "income"}))
	s.NoError(s.v.GetValidate().Struct(req{Kind: "expense"}))
	s.Error(s.v.GetValidate().Struct(req{Kind: "mixed"}))
}

func (s *ValidatorSuite) TestMoneyAmount() {
	type req struct {
		Amount string `validate:"money_amount"`
	}

	s.NoError(s.v.GetValidate().Struct(req{Amount: "12.50"}))
	s.NoError(s.v.GetValidate().Struct(req{Amount: "-42.5"}))
	s.NoError(s.v.GetValidate().Struct(req{Amount: "1000"}))
	s.Error(s.v.GetValidate().Struct(req{Amount: "12.505"}))
	s.Error(s.v.GetValidate().Struct(req{Amount: "zwölf"}))
}

func (s *ValidatorSuite) TestPositiveMoneyAmount() {
	type req struct {
		Amount string `validate:"positive_money_amount"`
	}

	s.NoError(s.v.GetValidate().Struct(req{Amount: "0.01"}))
	s.Error(s.v.GetValidate().Struct(req{Amount: "0"}))
	s.Error(s.v.GetValidate().Struct(req{Amount: "-5.00"}))
}
