package validation

import (
	"reflect"
	"strings"

	"vereinsbudget/internal/bankimport"
	"vereinsbudget/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("import_source", validateImportSource)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_money_amount", validatePositiveMoneyAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateImportSource checks the source tag against the supported bank dialects
func validateImportSource(fl validator.FieldLevel) bool {
	return bankimport.IsValidSource(strings.ToLower(fl.Field().String()))
}

// validateTransactionStatus allows the two transaction lifecycle states
func validateTransactionStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	return status == models.TransactionStatusExpected || status == models.TransactionStatusProcessed
}

// validateCategoryKind allows the two category kinds
func validateCategoryKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == models.CategoryKindIncome || kind == models.CategoryKindExpense
}

// validateMoneyAmount checks that a string field parses as a decimal with at
// most two fractional digits
func validateMoneyAmount(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return value.Exponent() >= -2
}

// validatePositiveMoneyAmount is money_amount restricted to values above zero
func validatePositiveMoneyAmount(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return value.GreaterThan(decimal.Zero) && value.Exponent() >= -2
}
