package align

import "errors"

var (
	// ErrEmptySequence indicates one of the input sequences has no links.
	ErrEmptySequence = errors.New("align: sequence must be non-empty")

	// ErrAlignmentOverflow indicates a sequence too long to align.
	ErrAlignmentOverflow = errors.New("align: sequence too long to align")
)
