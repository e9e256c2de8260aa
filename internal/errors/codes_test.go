package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "Unsupported bank import source", GetErrorMessage(ImportUnknownSource))
	assert.Equal(t, "Transaction not found", GetErrorMessage(TransactionNotFound))
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(AllowanceCapExceeded))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_999")))
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ImportUnknownSource, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{TransactionNotFound, http.StatusNotFound},
		{ProjectNotFound, http.StatusNotFound},
		{ReimbursementInvalidTransition, http.StatusConflict},
		{ImportEmptyFile, http.StatusUnprocessableEntity},
		{AllowanceCapExceeded, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ImportEmptyFile, "trace-1", WithDetails("no rows after header"))

	assert.Equal(t, string(ImportEmptyFile), resp.Error.Code)
	assert.Equal(t, "trace-1", resp.Error.TraceID)
	assert.Equal(t, []string{"no rows after header"}, resp.Error.Details)
	assert.True(t, resp.IsClientError())
	assert.False(t, resp.IsServerError())
}
