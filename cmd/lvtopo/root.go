// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	output  string
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "lvtopo",
		Short: "Simplicial homology from simplex lists and point clouds",
		Long: `lvtopo computes Betti numbers and Euler characteristics of finite
simplicial complexes, prints their boundary operators, and builds complexes
from point clouds with a circumradius (Čech) or diameter (Rips) threshold.
The rank command exposes the numerical rank used for Betti numbers.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log debug records to stderr")
	root.PersistentFlags().StringVarP(&g.output, "output", "o", outputText, "Output format: text, json or yaml")

	root.AddCommand(newBettiCmd(g), newCechCmd(g), newBoundaryCmd(g), newRankCmd(g))

	return root
}

// logger returns a text logger on the command's stderr; DEBUG when --verbose.
func (g *globalFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
