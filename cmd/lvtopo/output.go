// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/homology"
)

// reportView is what betti and cech print.
type reportView struct {
	homology.Report `yaml:",inline"`
	Simplices       int    `json:"simplices" yaml:"simplices"`
	Components      int    `json:"components" yaml:"components"`
	Verified        *bool  `json:"verified,omitempty" yaml:"verified,omitempty"`
	Stats           *stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

type stats struct {
	Inspected  int64 `json:"inspected" yaml:"inspected"`
	Admitted   int64 `json:"admitted" yaml:"admitted"`
	Degenerate int64 `json:"degenerate" yaml:"degenerate"`
}

func writeReport(w io.Writer, format string, v reportView) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case outputText:
		fmt.Fprintf(w, "simplices: %d\n", v.Simplices)
		fmt.Fprintf(w, "f-vector:  %v\n", v.FVector)
		fmt.Fprintf(w, "betti:     %v\n", v.Betti)
		fmt.Fprintf(w, "euler:     %d\n", v.Euler)
		fmt.Fprintf(w, "components: %d\n", v.Components)
		if v.Approximate {
			fmt.Fprintln(w, "ranks:     approximate")
		}
		if v.Verified != nil {
			fmt.Fprintf(w, "∂∂ = 0:    %t\n", *v.Verified)
		}
		if v.Stats != nil {
			fmt.Fprintf(w, "subsets:   %d inspected, %d admitted, %d degenerate\n",
				v.Stats.Inspected, v.Stats.Admitted, v.Stats.Degenerate)
		}
		for _, f := range v.Fallbacks {
			fmt.Fprintf(w, "warning:   rank of ∂%d fell back to %d columns (%s)\n", f.Dim, f.Cols, f.Reason)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
