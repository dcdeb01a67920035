// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/fixture"
	"github.com/katalvlaran/utmatrix/matrix"
)

// validationErrors are caller mistakes reported with ExitValidation.
var validationErrors = []error{
	config.ErrInvalidConfig,
	fixture.ErrBadDocument,
	fixture.ErrBadOperands,
	matrix.ErrInvalidArgument,
	matrix.ErrOutOfRange,
	matrix.ErrSizeMismatch,
	matrix.ErrNaNInf,
}

func isValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
