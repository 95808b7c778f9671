// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
)

// ErrInvalidSimplex is returned when a simplex repeats a vertex label or has
// no vertices at all. Degenerate simplices are rejected, never deduplicated.
var ErrInvalidSimplex = errors.New("simplex: invalid simplex")

// simplexErrorf wraps err with a call-site tag; errors.Is still matches err.
func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
