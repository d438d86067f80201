package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Round Store Operations
const (
	ErrMsgFailedToGetRound      = "failed to get round record"
	ErrMsgFailedToClaimRound    = "failed to claim round"
	ErrMsgFailedToCompleteRound = "failed to complete round"
	ErrMsgFailedToReleaseRound  = "failed to release round claim"
)
