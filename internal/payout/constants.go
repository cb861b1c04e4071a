package payout

// ============================================================================
// Policy Names
// ============================================================================

const (
	PolicyNameFixedRate = "fixed-rate"
	PolicyNamePool      = "pool"
)

// ============================================================================
// Error Messages
// ============================================================================

// Validation error messages
const (
	ErrMsgRateMustBePositive = "rate must be a positive number, got %v"
	ErrMsgPoolMustBePositive = "pool total must be a positive number, got %v"
	ErrMsgBothModesSet       = "set exactly one of --rate or --pool, not both"
	ErrMsgNoModeSet          = "set exactly one of --rate or --pool"
)

// Pipeline error messages
const (
	ErrMsgFetchLeaderboardFailed = "failed to fetch helper leaderboard: %w"
	ErrMsgAllocateFailed         = "failed to allocate payout: %w"
	ErrMsgResolveHelperFailed    = "failed to resolve helper %s: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgFetchedLeaderboard = "Fetched helper leaderboard"
	LogMsgAllocatedPayout    = "Allocated payout"
	LogMsgResolvedHelper     = "Resolved helper"
	LogMsgPayoutComplete     = "Payout report ready"
	LogMsgEmptyLeaderboard   = "No helper closed a ticket in the window"
)

const (
	LogMsgFailedToFetchLeaderboard = "Failed to fetch helper leaderboard"
	LogMsgFailedToAllocate         = "Failed to allocate payout"
	LogMsgFailedToResolveHelper    = "Failed to resolve helper, aborting report"
)

// ============================================================================
// Pipeline Stages
// ============================================================================

// Stage labels used for duration metrics
const (
	StageFetch    = "fetch"
	StageAllocate = "allocate"
	StageResolve  = "resolve"
)
