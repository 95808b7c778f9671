// SPDX-License-Identifier: MIT

// Command lvtopo computes Betti numbers and Euler characteristics of
// simplicial complexes read from YAML files, and builds Čech or Rips
// complexes from point clouds.
//
// Usage:
//
//	lvtopo betti    -f complex.yaml [--approx 1e-9] [--verify] [-o text|json|yaml]
//	lvtopo cech     -f points.yaml [--epsilon 0.5] [--criterion cech|rips] [--metric euclidean|manhattan|chebyshev] [--max-size k] [--progress]
//	lvtopo boundary -f complex.yaml -d 1 [--coboundary | --chain 1,-1,1]
//	lvtopo rank     -f matrix.yaml [--tolerance 1e-6] [--approx 1e-9 --seed 7]
//
// Input files:
//
//	# complex.yaml (labels are integers, or any strings)
//	simplices:
//	  - [0, 1]
//	  - [1, 2]
//	  - [2, 0]
//
//	# matrix.yaml
//	rows:
//	  - [1, 2]
//	  - [2, 4]
//
//	# points.yaml
//	epsilon: 0.5
//	points:
//	  - [0, 0]
//	  - [1, 0]
//	labels: [a, b]   # optional, one per point
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
