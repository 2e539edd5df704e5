package tab

import "errors"

var (
	// ErrTruncated reports end of input in the middle of a numeric stream:
	// the remaining token alignment cannot be trusted, so the whole parse
	// aborts.
	ErrTruncated = errors.New("tab: input ended before the section's numeric stream was complete")

	// ErrDimensionLine reports a fluid header whose dimension line carries
	// fewer than the three required tokens (NTABP, NTABT, RSWTOTB).
	ErrDimensionLine = errors.New("tab: malformed dimension line")

	// ErrNoFluidHeader reports a property section seen before any fluid
	// header, leaving the grid dimensions undefined.
	ErrNoFluidHeader = errors.New("tab: property section before fluid header")

	// ErrMissingProperty reports a query against a property whose section
	// was absent from the source file.
	ErrMissingProperty = errors.New("tab: property not populated")
)
