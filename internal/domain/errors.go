package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgConfiguration = "configuration error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Store errors
	ErrMsgStoreUnavailable = "ticket store unavailable"
	ErrMsgQuery            = "leaderboard query failed"

	// Payout errors
	ErrMsgEmptyPoolDivision = "cannot divide pool: no tickets closed in window"

	// Directory errors
	ErrMsgDirectoryUnavailable = "user directory unavailable"
	ErrMsgNoMatchFound         = "no matching user in directory"
)

// Common domain errors
// Every failure is fatal for the run. Wrap these with
// fmt.Errorf("%w: %s", domain.ErrXxx, details) and test with errors.Is.
var (
	// ErrConfiguration covers missing or malformed environment settings.
	ErrConfiguration = errors.New(ErrMsgConfiguration)

	// ErrInvalidInput covers a bad time window or payout-mode selection.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Leaderboard fetch errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
	ErrQuery            = errors.New(ErrMsgQuery)

	// ErrEmptyPoolDivision is returned by the pool policy when the window
	// has zero tickets. It must never be approximated.
	ErrEmptyPoolDivision = errors.New(ErrMsgEmptyPoolDivision)

	// Helper resolution errors
	ErrDirectoryUnavailable = errors.New(ErrMsgDirectoryUnavailable)
	ErrNoMatchFound         = errors.New(ErrMsgNoMatchFound)
)
