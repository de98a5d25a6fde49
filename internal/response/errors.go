package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Listing / aggregation contract ────────────────────────────────
	ErrInvalidSortKey   ErrCode = "INVALID_SORT_KEY"
	ErrInvalidDirection ErrCode = "INVALID_SORT_DIRECTION"
	ErrInvalidPage      ErrCode = "INVALID_PAGE"
	ErrInvalidTier      ErrCode = "INVALID_RISK_TIER"

	// ─── Reports ───────────────────────────────────────────────────────
	ErrReportUnavailable ErrCode = "REPORT_UNAVAILABLE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is malformed."
	case ErrInvalidSortKey:
		return "Unknown sort column."
	case ErrInvalidDirection:
		return "Sort order must be asc or desc."
	case ErrInvalidPage:
		return "Page and per_page must be positive integers."
	case ErrInvalidTier:
		return "Risk filter must be Low, Medium or High."
	case ErrReportUnavailable:
		return "The report could not be generated."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
