package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/config"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/cpm"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/instructions"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/reporter"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/schedule"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/ui"
)

const (
	day   = 7
	title = "The Sum of Its Parts"
)

type options struct {
	input    string
	config   string
	workers  int
	base     int
	tieBreak string
	json     bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2018 day 7: The Sum of Its Parts",
		Long: `Reads step instructions of the form
"Step C must be finished before step A can begin." and prints the
alphabetical completion order (part one) and the time a pool of
workers needs to finish every step (part two).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "Instruction file (.txt or .json, default input.txt)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "YAML config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", schedule.DefaultWorkers, "Number of simulated workers")
	rootCmd.PersistentFlags().IntVar(&opts.base, "base", schedule.DefaultBaseDuration, "Fixed duration added to every step")
	rootCmd.PersistentFlags().StringVar(&opts.tieBreak, "tie-break", string(schedule.GreatestFirst), "Part two pick order: greatest or smallest")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log loader warnings")

	rootCmd.AddCommand(solveCmd(opts))
	rootCmd.AddCommand(planCmd(opts))
	rootCmd.AddCommand(traceCmd(opts))

	return rootCmd
}

func solveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Print the answers to both parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}
}

func planCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show critical path and parallel waves of the step graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			rpt, err := solve(cmd, opts, true)
			if err != nil {
				return err
			}
			if opts.json {
				return outputJSON(cmd.OutOrStdout(), rpt)
			}
			rpt.PrintPlan(cmd.OutOrStdout())
			return nil
		},
	}
}

func traceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Show which worker ran which step and when",
		RunE: func(cmd *cobra.Command, args []string) error {
			rpt, err := solve(cmd, opts, true)
			if err != nil {
				return err
			}
			if opts.json {
				return outputJSON(cmd.OutOrStdout(), rpt)
			}
			rpt.PrintTimeline(cmd.OutOrStdout())
			return nil
		},
	}
}

func runSolve(cmd *cobra.Command, opts *options) error {
	rpt, err := solve(cmd, opts, false)
	if err != nil {
		return err
	}
	if opts.json {
		return outputJSON(cmd.OutOrStdout(), rpt)
	}
	ui.PrintBanner(cmd.ErrOrStderr(), day, title)
	rpt.PrintAnswers(cmd.OutOrStdout())
	return nil
}

// solve is shared logic for every command: load settings and input, then
// run both parts. withPlan adds the critical path analysis.
func solve(cmd *cobra.Command, opts *options, withPlan bool) (*reporter.Reporter, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	sc := cfg.Schedule()

	loader := instructions.Loader{}
	if opts.verbose {
		loader.Logger = log.New(cmd.ErrOrStderr(), "", 0)
	}
	edges, err := loader.Load(cfg.Input)
	if err != nil {
		return nil, err
	}

	order, err := schedule.Resolve(edges)
	if err != nil {
		return nil, fmt.Errorf("part one: %w", err)
	}

	sim, err := schedule.Simulate(edges, sc)
	if err != nil {
		return nil, fmt.Errorf("part two: %w", err)
	}

	rpt := reporter.New(order, sim, sc)
	if withPlan {
		plan, err := cpm.Analyze(graph.Build(edges), sc.BaseDuration)
		if err != nil {
			return nil, fmt.Errorf("critical path analysis: %w", err)
		}
		rpt.Plan = plan
	}
	return rpt, nil
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path, required := opts.config, true
	if path == "" {
		path, required = config.DefaultPath, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("workers") {
		workers := opts.workers
		cfg.Workers = &workers
	}
	if flags.Changed("base") {
		base := opts.base
		cfg.BaseDuration = &base
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak = opts.tieBreak
	}
	return cfg, nil
}

func outputJSON(w io.Writer, rpt *reporter.Reporter) error {
	data, err := rpt.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
