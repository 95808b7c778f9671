// SPDX-License-Identifier: MIT

package simplicial

import (
	"errors"
	"fmt"
)

// ErrEmptyComplex indicates a query that needs at least one face.
var ErrEmptyComplex = errors.New("simplicial: complex is empty")

func complexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
