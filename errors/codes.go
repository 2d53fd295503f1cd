package errors

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Authentication errors
const (
	// ErrCodeUnauthorized indicates no valid credential was presented.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeInvalidToken indicates the token failed verification.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	// ErrCodeTokenExpired indicates the token's expiry is in the past.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates invalid input or configuration.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected host-side failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeExternalService indicates a failure reaching the identity
	// provider (discovery or key endpoints).
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeExternalService: true,
}

// IsRetryableCode reports whether errors with this code are safe to retry.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
