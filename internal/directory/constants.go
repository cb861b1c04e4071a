package directory

import "time"

// Client defaults
const (
	DefaultTimeout           = 10 * time.Second
	DefaultRequestsPerSecond = 5.0
	DefaultCacheSize         = 256

	// ExpectedAPIPath is the path the base URL is expected to end in.
	ExpectedAPIPath = "/api/v1"
)

const (
	usersPath       = "users"
	profilePath     = "users"
	queryParam      = "query"
	maxErrorBody    = 512
	headerAccept    = "Accept"
	contentTypeJSON = "application/json"
)

// Error messages
const (
	ErrMsgInvalidBaseURL   = "invalid directory base URL %q"
	ErrMsgBaseURLNotAbs    = "directory base URL %q must be an absolute http(s) URL"
	ErrMsgAPIKeyRequired   = "directory API key is required"
	ErrMsgHelperIDRequired = "helper ID is required"
	ErrMsgRequestFailed    = "failed to fetch users from directory"
	ErrMsgUnexpectedStatus = "directory returned error: %d %s - %s"
	ErrMsgDecodeFailed     = "invalid users response from directory"
	ErrMsgNoUsersForHelper = "directory returned no users for %s"
	ErrMsgRateLimiterWait  = "waiting for directory rate limiter"
)

// Log messages
const (
	LogMsgFetchingUsers      = "Fetching users from directory"
	LogMsgAmbiguousMatch     = "Directory returned several users, using the first"
	LogMsgCacheHit           = "Helper identity served from run cache"
	LogMsgBaseURLPathWarning = "Directory base URL does not end in /api/v1. Are you sure you have the full URL?"
)
