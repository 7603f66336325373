package repository

import "errors"

// Load errors
var (
	// ErrMalformedStorage indicates the data file exists but is not valid JSON
	ErrMalformedStorage = errors.New("malformed storage document")

	// ErrOwnerNotFound indicates a persisted account references a cpf with no
	// matching client; the whole load aborts
	ErrOwnerNotFound = errors.New("account owner not found")
)
