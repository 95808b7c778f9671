// SPDX-License-Identifier: MIT

package homology

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFace indicates a boundary facet that is absent from the
	// complex. The face set was not closed; this is an internal-consistency
	// failure and is always propagated.
	ErrMissingFace = errors.New("homology: missing face")

	// ErrNotChainComplex indicates ∂_{i-1}·∂_i ≠ 0.
	ErrNotChainComplex = errors.New("homology: boundary of boundary is not zero")

	// ErrInvalidDimension indicates a negative dimension argument.
	ErrInvalidDimension = errors.New("homology: invalid dimension")
)

func homologyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
