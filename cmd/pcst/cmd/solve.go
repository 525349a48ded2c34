package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvlath-labs/pcstfast"
	"github.com/lvlath-labs/pcstfast/internal/config"
)

var (
	configPath string
	output     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the PCST/PCSF instance described by a config file",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the graph/solver config file (required)")
	solveCmd.MarkFlagRequired("config")
	solveCmd.Flags().StringVarP(&output, "output", "o", "text", "result format: text or yaml")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	g, err := cfg.BuildGraph()
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	opts, err := cfg.SolverOptions()
	if err != nil {
		return fmt.Errorf("failed to build solver options: %w", err)
	}
	if verbose {
		opts = append(opts, pcst.WithSink(func(level int, msg string) {
			fmt.Fprintf(cmd.OutOrStdout(), "[pcst] %s\n", msg)
		}), pcst.WithVerbosity(1))
	}

	result, err := pcst.SolveGraph(g, opts...)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	switch output {
	case "yaml":
		doc, err := config.FormatResultYAML(result)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(doc))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "vertices (%d): %v\n", len(result.Vertices), result.Vertices)
		fmt.Fprintf(cmd.OutOrStdout(), "edges    (%d): %v\n", len(result.Edges), result.Edges)
	}

	return nil
}
