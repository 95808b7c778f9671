// SPDX-License-Identifier: MIT

package geometric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEpsilon indicates a negative or non-finite threshold.
	ErrInvalidEpsilon = errors.New("geometric: invalid epsilon")

	// ErrDimensionMismatch indicates points of unequal or zero dimension.
	ErrDimensionMismatch = errors.New("geometric: point dimension mismatch")

	// ErrInvalidPoint indicates a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("geometric: invalid point coordinate")

	// ErrLabelCount indicates that labels and points differ in length.
	ErrLabelCount = errors.New("geometric: label count does not match point count")

	// ErrDuplicateLabel indicates two points with the same label.
	ErrDuplicateLabel = errors.New("geometric: duplicate label")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("geometric: invalid option supplied")
)

func geometricErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
