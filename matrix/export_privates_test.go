// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private validators.
//
// Compiled only with the package tests, so matrix_test can reach unexported
// guards without widening the production API.

var (
	ExportedValidateSize       = validateSize
	ExportedValidateStartIndex = validateStartIndex
	ExportedValidateFinite     = validateFinite[float64]
	ExportedValidateSameVector = validateSameVector[int]
	ExportedValidateSameMatrix = validateSameMatrix[int]
)
