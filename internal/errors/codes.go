package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Import error codes (IMPORT_*)
const (
	ImportUnknownSource ErrorCode = "IMPORT_001"
	ImportEmptyFile     ErrorCode = "IMPORT_002"
	ImportUnreadableCSV ErrorCode = "IMPORT_003"
	ImportTooManyRows   ErrorCode = "IMPORT_004"
	ImportFileTooLarge  ErrorCode = "IMPORT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound          ErrorCode = "TRANSACTION_001"
	TransactionInvalidStatus     ErrorCode = "TRANSACTION_002"
	TransactionImportedImmutable ErrorCode = "TRANSACTION_003"
)

// Project error codes (PROJECT_*)
const (
	ProjectNotFound ErrorCode = "PROJECT_001"
	ProjectArchived ErrorCode = "PROJECT_002"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Donor error codes (DONOR_*)
const (
	DonorNotFound ErrorCode = "DONOR_001"
)

// User and organization error codes (USER_*, ORGANIZATION_*)
const (
	UserNotFound         ErrorCode = "USER_001"
	UserEmailTaken       ErrorCode = "USER_002"
	OrganizationNotFound ErrorCode = "ORGANIZATION_001"
)

// Reimbursement error codes (REIMBURSEMENT_*)
const (
	ReimbursementNotFound          ErrorCode = "REIMBURSEMENT_001"
	ReimbursementInvalidTransition ErrorCode = "REIMBURSEMENT_002"
	ReimbursementInvalidAmount     ErrorCode = "REIMBURSEMENT_003"
)

// Allowance error codes (ALLOWANCE_*)
const (
	AllowanceCapExceeded   ErrorCode = "ALLOWANCE_001"
	AllowanceInvalidAmount ErrorCode = "ALLOWANCE_002"
	AllowanceNotFound      ErrorCode = "ALLOWANCE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Import errors
	ImportUnknownSource: "Unsupported bank import source",
	ImportEmptyFile:     "Uploaded statement contains no data rows",
	ImportUnreadableCSV: "Uploaded statement could not be parsed as CSV",
	ImportTooManyRows:   "Uploaded statement exceeds the row limit",
	ImportFileTooLarge:  "Uploaded statement exceeds the size limit",

	// Transaction errors
	TransactionNotFound:          "Transaction not found",
	TransactionInvalidStatus:     "Invalid transaction status",
	TransactionImportedImmutable: "Imported transactions keep their booked amount and date",

	// Project errors
	ProjectNotFound: "Project not found",
	ProjectArchived: "Project is archived and no longer accepts transactions",

	// Category errors
	CategoryNotFound: "Category not found",

	// Donor errors
	DonorNotFound: "Donor not found",

	// User and organization errors
	UserNotFound:         "User not found",
	UserEmailTaken:       "A user with this email already exists",
	OrganizationNotFound: "Organization not found",

	// Reimbursement errors
	ReimbursementNotFound:          "Reimbursement not found",
	ReimbursementInvalidTransition: "Reimbursement cannot move to the requested status",
	ReimbursementInvalidAmount:     "Reimbursement amount must be positive",

	// Allowance errors
	AllowanceCapExceeded:   "Volunteer allowance cap for this year would be exceeded",
	AllowanceInvalidAmount: "Allowance amount must be positive",
	AllowanceNotFound:      "Allowance not found",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
