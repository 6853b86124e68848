package model

import "errors"

// Error taxonomy for the statistics core. All conditions are recoverable and
// reported as values; the core never panics on malformed external input.
var (
	// ErrCapacityExceeded is returned when a new key arrives and the store is
	// at its configured record capacity. Counters for known keys are unaffected.
	ErrCapacityExceeded = errors.New("store capacity exceeded")

	// ErrMalformedInput is returned for inputs the core cannot classify, such
	// as status codes outside 100..599.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNotInitialized is returned for operations attempted before the zone
	// has been configured.
	ErrNotInitialized = errors.New("statistics zone not initialized")

	// ErrShuttingDown is returned for operations attempted during or after
	// zone teardown.
	ErrShuttingDown = errors.New("statistics zone shutting down")
)
