package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter ErrorCode = 100
	ErrCodeInvalidType      ErrorCode = 101
	ErrCodeMissingParameter ErrorCode = 102
	ErrCodeInvalidWindow    ErrorCode = 103
	ErrCodeInvalidSpan      ErrorCode = 104
	ErrCodeInvalidStdDev    ErrorCode = 105
	ErrCodeInvalidLag       ErrorCode = 106
	ErrCodeInsufficientData ErrorCode = 107

	// Series errors (200-299)
	ErrCodeEmptySeries         ErrorCode = 200
	ErrCodeUnorderedTimestamps ErrorCode = 201
	ErrCodeDuplicateTimestamp  ErrorCode = 202
	ErrCodeLengthMismatch      ErrorCode = 203
	ErrCodeColumnNotFound      ErrorCode = 204
	ErrCodeColumnAlreadyExists ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound            ErrorCode = 300
	ErrCodeIndicatorAlreadyExists       ErrorCode = 301
	ErrCodeIndicatorCalculation         ErrorCode = 302
	ErrCodeCrossDetectionNotImplemented ErrorCode = 303
	ErrCodeCrossConflict                ErrorCode = 304
	ErrCodeSignalGenerationNotSupported ErrorCode = 305

	// Datasource errors (400-499)
	ErrCodeDataSourceUnavailable ErrorCode = 400
	ErrCodeQueryFailed           ErrorCode = 401
	ErrCodeNoDataFound           ErrorCode = 402
	ErrCodeDataParseFailed       ErrorCode = 403

	// Config errors (500-599)
	ErrCodeConfigParseFailed     ErrorCode = 500
	ErrCodeConfigValidationError ErrorCode = 501
	ErrCodeUnknownIndicatorType  ErrorCode = 502
)
