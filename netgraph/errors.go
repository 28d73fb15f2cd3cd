// SPDX-License-Identifier: MIT

package netgraph

import "errors"

// Sentinel errors for label validation. Shape problems (label count ≠ N,
// non-square matrix) are reported with matrix.ErrDimension.
var (
	// ErrEmptyLabel indicates a vertex label is the empty string.
	ErrEmptyLabel = errors.New("netgraph: empty vertex label")

	// ErrDuplicateLabel indicates two matrix indices share one label.
	ErrDuplicateLabel = errors.New("netgraph: duplicate vertex label")
)
