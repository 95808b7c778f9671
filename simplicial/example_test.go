// SPDX-License-Identifier: MIT
package simplicial_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/simplicial"
)

// ExampleNew builds the hollow triangle and lists its faces per dimension.
func ExampleNew() {
	c, _ := simplicial.New([]int{0, 1}, []int{1, 2}, []int{0, 2})
	for d := 0; d <= 1; d++ {
		fmt.Println(d, c.NFaces(d))
	}
	fmt.Println(c.FVector())
	// Output:
	// 0 [(0) (1) (2)]
	// 1 [(0, 1) (0, 2) (1, 2)]
	// [3 3]
}
