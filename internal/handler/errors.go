package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Lottery operation error messages
	ErrMsgAnnouncementFailed = "Failed to publish round announcement"
	ErrMsgRoundStatusFailed  = "Failed to fetch round status"
)

// Success messages for API responses
const (
	MsgAnnouncementPublished = "Round announcement published"
	MsgDrawCompleted         = "Draw completed"
)
