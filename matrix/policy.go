// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Every constant here is consumed by a kernel or validator and covered by tests.
package matrix

const (
	// DefaultEpsilon is the relative tolerance used by structural checks
	// (symmetry of covariance/precision matrices). Validators scale it by the
	// largest absolute entry so the check is invariant to the units of returns.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)
