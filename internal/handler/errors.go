package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidTournamentID   = "Invalid tournament id"

	// Tournament operation error messages
	ErrMsgCreateTournamentFailed = "Failed to create tournament"
	ErrMsgRunRoundFailed         = "Failed to run round"
	ErrMsgAutoPlayFailed         = "Failed to auto-play tournament"
	ErrMsgRestartFailed          = "Failed to restart tournament"
	ErrMsgAddCardFailed          = "Failed to add card"
	ErrMsgJournalFailed          = "Failed to build journal"
	ErrMsgDeleteFailed           = "Failed to delete tournament"
	ErrMsgGetTournamentFailed    = "Failed to get tournament"
)

// Success messages
const (
	MsgTournamentDeleted = "Tournament deleted"
)
