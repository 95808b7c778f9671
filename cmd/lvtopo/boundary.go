// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/homology"
	"github.com/katalvlaran/lvtopo/matrix"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// cycleTol is the |entry| bound under which ∂(chain) counts as zero.
const cycleTol = 1e-9

type boundaryFlags struct {
	file       string
	dim        int
	coboundary bool
	chain      []float64
}

func newBoundaryCmd(_ *globalFlags) *cobra.Command {
	f := &boundaryFlags{}
	cmd := &cobra.Command{
		Use:   "boundary",
		Short: "Print the boundary operator ∂_d of a simplex list",
		Long: `Print ∂_d densely. Rows are the (d-1)-faces and columns the d-faces,
both in canonical order (shorter first, then lexicographic). The row of ∂_0
is the augmentation and is labeled ∅.

With --coboundary the transpose δ^d = ∂_{d+1}ᵀ is printed instead. With
--chain the operator is applied to the given coefficients over the d-faces.

Examples:
  lvtopo boundary -f triangle.yaml -d 1
  lvtopo boundary -f triangle.yaml -d 0 --coboundary
  lvtopo boundary -f triangle.yaml -d 1 --chain 1,-1,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in complexFile
			if err := decodeStrict(f.file, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			if ints, ok := in.intLabels(); ok {
				return runBoundary(cmd.OutOrStdout(), ints, f)
			}

			return runBoundary(cmd.OutOrStdout(), in.Simplices, f)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file with a simplices list (- for stdin)")
	cmd.Flags().IntVarP(&f.dim, "dim", "d", 1, "Dimension of the boundary operator")
	cmd.Flags().BoolVar(&f.coboundary, "coboundary", false, "Print the coboundary δ^d instead")
	cmd.Flags().Float64SliceVar(&f.chain, "chain", nil, "Coefficients over the d-faces; prints ∂_d of the chain")
	cmd.MarkFlagsMutuallyExclusive("coboundary", "chain")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBoundary[L cmp.Ordered](w io.Writer, simplices [][]L, f *boundaryFlags) error {
	c, err := simplicial.New(simplices...)
	if err != nil {
		return err
	}
	switch {
	case f.chain != nil:
		img, err := homology.ChainBoundary(c, f.dim, f.chain)
		if err != nil {
			return err
		}
		cycle, err := homology.IsCycle(c, f.dim, f.chain, cycleTol)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "chain:    %s\n", formatRow(f.chain))
		fmt.Fprintf(w, "boundary: %s\n", formatRow(img))
		fmt.Fprintf(w, "cycle:    %t\n", cycle)

		return nil
	case f.coboundary:
		m, err := homology.Coboundary(c, f.dim)
		if err != nil {
			return err
		}
		return printOperator(w, m.ToDense(), c.NFaces(f.dim+1), c.NFaces(f.dim))
	default:
		m, err := homology.BoundaryDense(c, f.dim)
		if err != nil {
			return err
		}
		return printOperator(w, m, c.NFaces(f.dim-1), c.NFaces(f.dim))
	}
}

// printOperator writes the shape, the column faces and one labeled line per
// row. Rows beyond rowFaces (the augmentation) are labeled ∅.
func printOperator[L cmp.Ordered](w io.Writer, m *matrix.Dense, rowFaces, colFaces []simplex.Simplex[L]) error {
	r, c := m.Shape()
	fmt.Fprintf(w, "shape: %dx%d\n", r, c)
	fmt.Fprintf(w, "cols:  %v\n", colFaces)
	for i := 0; i < r; i++ {
		row, err := m.RawRow(i)
		if err != nil {
			return err
		}
		label := "∅"
		if i < len(rowFaces) {
			label = rowFaces[i].String()
		}
		fmt.Fprintf(w, "%s %s\n", label, formatRow(row))
	}

	return nil
}

func formatRow(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
