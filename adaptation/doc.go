// SPDX-License-Identifier: MIT

// Package adaptation implements von Kries chromatic adaptation.
//
// A transform is a named 3×3 cone-response matrix M from the dataset
// registry (CAT02, Bradford, Von Kries, ...). Adapting tristimulus values
// from a source white XYZw to a target white XYZwr uses
//
//	A = M⁻¹ · diag(M·XYZwr / M·XYZw) · M
//
// Behavior highlights:
//   - Unknown transform names fail before any computation with an error
//     wrapping chroma.ErrConfig that lists the registered names.
//   - A zero source cone response yields Inf/NaN entries; nothing is raised.
//   - VonKries accepts whitepoints as single vectors (broadcast) or as
//     arrays whose leading shape matches the input (row for row).
package adaptation
