// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/geometric"
)

type cechFlags struct {
	file      string
	epsilon   float64
	criterion string
	metric    string
	maxSize   int
	progress  bool
	approx    float64
	verify    bool
}

var criteria = map[string]geometric.Criterion{
	"cech": geometric.Circumradius,
	"rips": geometric.Diameter,
}

var metrics = map[string]geometric.DistanceFunc{
	"euclidean": geometric.Euclidean,
	"manhattan": geometric.Manhattan,
	"chebyshev": geometric.Chebyshev,
}

func newCechCmd(g *globalFlags) *cobra.Command {
	f := &cechFlags{}
	cmd := &cobra.Command{
		Use:   "cech",
		Short: "Build a complex from a point cloud and report its homology",
		Long: `Inspect every subset of the points and keep those whose radius is at
most epsilon, then report the f-vector, Betti numbers and Euler characteristic.

The --epsilon flag overrides the file's epsilon. All 2^n subsets are inspected,
so keep n small or bound the subset size with --max-size.

Examples:
  lvtopo cech -f square.yaml --epsilon 0.5
  lvtopo cech -f cloud.yaml --criterion rips --max-size 3 --progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in pointsFile
			if err := decodeStrict(f.file, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			eps, err := f.resolveEpsilon(cmd, in)
			if err != nil {
				return err
			}
			crit, ok := criteria[strings.ToLower(f.criterion)]
			if !ok {
				return fmt.Errorf("unknown criterion %q (want cech or rips)", f.criterion)
			}
			dist, ok := metrics[strings.ToLower(f.metric)]
			if !ok {
				return fmt.Errorf("unknown metric %q (want euclidean, manhattan or chebyshev)", f.metric)
			}
			opts := []geometric.Option{
				geometric.WithCriterion(crit),
				geometric.WithDistance(dist),
				geometric.WithMaxSimplexSize(f.maxSize),
				geometric.WithLogger(g.logger(cmd)),
				geometric.WithContext(cmd.Context()),
			}
			if f.progress {
				bar := pb.New64(0).SetWriter(cmd.ErrOrStderr()).Start()
				defer bar.Finish()
				opts = append(opts, geometric.WithProgress(func(done, total int64) {
					bar.SetTotal(total)
					bar.SetCurrent(done)
				}))
			}

			var view reportView
			if len(in.Labels) > 0 {
				b, err := geometric.NewLabeledBuilder(in.Points, in.Labels, eps, opts...)
				if err != nil {
					return err
				}
				view, err = buildAndAnalyze(b, g, f, cmd)
				if err != nil {
					return err
				}
			} else {
				b, err := geometric.NewBuilder(in.Points, eps, opts...)
				if err != nil {
					return err
				}
				view, err = buildAndAnalyze(b, g, f, cmd)
				if err != nil {
					return err
				}
			}

			return writeReport(cmd.OutOrStdout(), g.output, view)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file with points (- for stdin)")
	cmd.Flags().Float64VarP(&f.epsilon, "epsilon", "e", 0, "Radius threshold; overrides the file's epsilon")
	cmd.Flags().StringVar(&f.criterion, "criterion", "cech", "Membership criterion: cech (circumradius) or rips (diameter)")
	cmd.Flags().StringVar(&f.metric, "metric", "euclidean", "Distance: euclidean, manhattan or chebyshev")
	cmd.Flags().IntVar(&f.maxSize, "max-size", geometric.DefaultMaxSimplexSize, "Largest subset size to inspect (0 = all)")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().Float64Var(&f.approx, "approx", 0, "Use approximate ranks with this relative tolerance (0 = exact)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Check that every ∂_{i-1}·∂_i is zero")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// resolveEpsilon prefers the flag when it was set explicitly.
func (f *cechFlags) resolveEpsilon(cmd *cobra.Command, in pointsFile) (float64, error) {
	if cmd.Flags().Changed("epsilon") {
		return f.epsilon, nil
	}
	if in.Epsilon == nil {
		return 0, fmt.Errorf("%s: no epsilon in file and --epsilon not set", f.file)
	}

	return *in.Epsilon, nil
}

func buildAndAnalyze[L cmp.Ordered](b *geometric.Builder[L], g *globalFlags, f *cechFlags, cmd *cobra.Command) (reportView, error) {
	c, st, err := b.Complex()
	if err != nil {
		return reportView{}, err
	}
	view, err := analyze(c, g, f.approx, f.verify, cmd)
	if err != nil {
		return reportView{}, err
	}
	view.Simplices = b.Len() + int(st.Admitted)
	view.Stats = &stats{Inspected: st.Inspected, Admitted: st.Admitted, Degenerate: st.Degenerate}

	return view, nil
}
