// SPDX-License-Identifier: MIT

package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplex"
)

// ExampleClosure lists every face of a filled triangle, dimension by dimension.
func ExampleClosure() {
	tri, _ := simplex.New(3, 1, 2)
	fs := simplex.Closure([]simplex.Simplex[int]{tri})
	for d := 0; d <= fs.MaxDim(); d++ {
		fmt.Println(d, fs.OfDim(d))
	}
	// Output:
	// 0 [(1) (2) (3)]
	// 1 [(1, 2) (1, 3) (2, 3)]
	// 2 [(1, 2, 3)]
}
