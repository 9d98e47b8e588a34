package tabular

import "errors"

var (
	// ErrDuplicateKey indicates two node rows with the same key.
	ErrDuplicateKey = errors.New("tabular: duplicate node key")

	// ErrUnknownKey indicates an edge endpoint with no matching node row.
	ErrUnknownKey = errors.New("tabular: unknown node key")

	// ErrColumnLength indicates columns of one table with different lengths.
	ErrColumnLength = errors.New("tabular: column length mismatch")

	// ErrBadHeader indicates a CSV header that does not match the expected layout.
	ErrBadHeader = errors.New("tabular: unexpected CSV header")

	// ErrBadRecord indicates a CSV field that does not parse.
	ErrBadRecord = errors.New("tabular: malformed CSV record")
)
