package errs

// Sentinels shared across layers. Package-specific errors are Marked with one of these
// so handlers can map them to a status code without importing every package.
var (
	// Validation errors
	ErrValidation = New("validation failed")

	// Backend errors
	ErrBackendUnavailable = New("backend unavailable")
	ErrBackendRejected    = New("backend rejected request")
	ErrMalformedResponse  = New("malformed backend response")
	ErrUnauthorized       = New("backend refused credentials")
	ErrNotFound           = New("backend resource not found")

	// Session errors
	ErrSessionNotFound = New("booking session not found")

	// Admin errors
	ErrAdminTokenRequired = New("admin token required")
	ErrAdminTokenExpired  = New("admin token expired")
)
