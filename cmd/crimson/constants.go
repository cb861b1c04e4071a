package main

// Flag names
const (
	flagStart       = "start"
	flagEnd         = "end"
	flagRate        = "rate"
	flagPool        = "pool"
	flagFormat      = "format"
	flagMetricsFile = "metrics-file"
)

// Report formats
const (
	formatText = "text"
	formatJSON = "json"
)

// Error Messages
const (
	ErrMsgUnknownFormat = "unknown report format %q, expected text or json"
	ErrMsgNoReport      = "payout produced no report"
)

// Log Messages
const (
	LogMsgStartingPayout = "Starting payout"
	LogMsgConfigWarning  = "Configuration warning"
)
