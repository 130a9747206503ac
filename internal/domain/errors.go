package domain

import "errors"

// Failure taxonomy. Callers classify failures with errors.Is; the HTTP layer
// maps them to status codes.
var (
	// ErrEmptyInput indicates text or a query that is blank after trimming.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidArgument indicates a malformed caller argument, such as a
	// non-positive result count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrProvider indicates the embedding provider failed or returned a
	// malformed vector.
	ErrProvider = errors.New("embedding provider failure")

	// ErrStore indicates the vector store rejected an operation or is
	// unreachable.
	ErrStore = errors.New("vector store failure")

	// ErrUnsupportedFormat indicates an upload that is not a readable PDF.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrTooLarge indicates input exceeding a configured size ceiling.
	ErrTooLarge = errors.New("input too large")
)
