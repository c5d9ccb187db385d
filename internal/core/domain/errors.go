package domain

import "errors"

// Domain errors represent parsing and input failures.
// Field-level decode failures are NOT errors: normalisers return absent
// results and the surrounding record is still emitted.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOrphanLine indicates a non-blank line outside any open section
	// while a document is open. Structural: aborts the current archive.
	ErrOrphanLine = errors.New("line outside any section")

	// ErrEmptyArchive indicates an archive with no payload member.
	ErrEmptyArchive = errors.New("archive has no payload")

	// ErrUnknownCharset indicates a configured charset with no decoder.
	ErrUnknownCharset = errors.New("unknown charset")
)
