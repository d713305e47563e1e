package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Engine errors
	ErrMsgEmptyCatalog         = "card catalog is empty"
	ErrMsgEmptyInput           = "cannot pick from an empty sequence"
	ErrMsgInvalidConfiguration = "invalid tournament configuration"
	ErrMsgTournamentNotStarted = "tournament has not been created"

	// Catalog errors
	ErrMsgInvalidCard = "invalid card"

	// Session errors
	ErrMsgSessionNotFound = "tournament session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrEmptyCatalog means no deck can be built; it is surfaced before any competitor exists.
	ErrEmptyCatalog = errors.New(ErrMsgEmptyCatalog)

	// ErrEmptyInput is a contract violation: something asked the RNG to pick from nothing.
	ErrEmptyInput = errors.New(ErrMsgEmptyInput)

	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)
	ErrTournamentNotStarted = errors.New(ErrMsgTournamentNotStarted)

	ErrInvalidCard = errors.New(ErrMsgInvalidCard)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
