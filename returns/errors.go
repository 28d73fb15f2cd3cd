// SPDX-License-Identifier: MIT

package returns

import "errors"

var (
	// ErrEmptyInput is returned when a table has no header or no data rows.
	ErrEmptyInput = errors.New("returns: empty input")

	// ErrMalformedRow is returned for ragged rows, empty or unparsable cells.
	ErrMalformedRow = errors.New("returns: malformed row")

	// ErrNonPositivePrice is returned by LogReturns for a price ≤ 0.
	ErrNonPositivePrice = errors.New("returns: non-positive price")

	// ErrUnknownFormat is returned for an unrecognized input format or kind.
	ErrUnknownFormat = errors.New("returns: unknown format")
)
