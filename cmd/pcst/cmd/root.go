// Package cmd implements the pcst command tree.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pcst",
	Short: "Prize-Collecting Steiner Tree/Forest solver",
	Long: `pcst solves the Prize-Collecting Steiner Tree/Forest problem with the
Goemans-Williamson primal-dual moat-growth algorithm.

It reads a graph description (vertex prizes, edge costs) and solver
options from a YAML or JSON config file and prints the vertices and
edges the solver decided to keep.`,
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-phase solve progress")

	binName := BinName()
	rootCmd.Example = fmt.Sprintf(`  # Solve a graph described in a config file
  %s solve -c ./graph.yaml

  # Solve with verbose phase output
  %s solve -c ./graph.yaml -v`, binName, binName)
}

// BinName returns the base name of the current executable, used to keep
// Example text accurate regardless of how the binary was built.
func BinName() string {
	return filepath.Base(os.Args[0])
}
