// Package main provides the gantt command: an interactive terminal Gantt
// chart with layout, SVG and check subcommands for scripts.
//
// Usage:
//
//	gantt [view] [-f tasks.json | -b board]
//	gantt layout --anchor 2024-01-01 --days 14
//	gantt svg -o chart.svg
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/cli"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, cli.ErrIssuesFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand
type globalFlags struct {
	configDir string
	file      string
	board     string
	verbose   bool
	logFile   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "gantt",
		Short:         "Terminal Gantt chart with dependency connectors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config", ".", "directory holding .ncs-gantt.json or .ncs-gantt.yaml")
	pf.StringVarP(&flags.file, "file", "f", "", `task document, "-" for stdin (default store.path)`)
	pf.StringVarP(&flags.board, "board", "b", "", "open a registered board by name")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file (the view logs nowhere otherwise)")

	root.AddCommand(
		viewCmd(flags),
		layoutCmd(flags),
		svgCmd(flags),
		checkCmd(flags),
		daysCmd(flags),
		boardsCmd(flags),
		configCmd(flags),
	)
	return root
}

func viewCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive chart (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, flags)
		},
	}
}

// addWindowFlags binds the window selection flags
func addWindowFlags(cmd *cobra.Command, opts *cli.WindowOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Anchor, "anchor", "", "first day of the window, YYYY-MM-DD (default: aligned on today)")
	f.IntVar(&opts.Days, "days", 0, "number of days (default: from the zoom level)")
	f.StringVarP(&opts.Granularity, "granularity", "g", "", "zoom level: day, week or month")
	f.StringSliceVar(&opts.Shift, "shift", nil, "move the window one unit per step: next or prev (repeatable)")
	f.StringVar(&opts.Now, "now", "", "reference date for today and overdue, YYYY-MM-DD")
}

func addLayoutFlags(cmd *cobra.Command, opts *cli.LayoutOptions) {
	addWindowFlags(cmd, &opts.WindowOptions)
	f := cmd.Flags()
	f.StringVar(&opts.Order, "order", cli.OrderInput, "row order: input, phase, start, status, priority or title")
	f.BoolVar(&opts.CheckCycles, "check-cycles", false, "also look for dependency cycles")
}

func layoutCmd(flags *globalFlags) *cobra.Command {
	opts := &cli.LayoutOptions{}
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed geometry as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cleanup, err := setup(flags, false)
			if err != nil {
				return err
			}
			defer cleanup()
			return cli.LayoutCommand(cmd.Context(), deps, *opts)
		},
	}
	addLayoutFlags(cmd, opts)
	return cmd
}

func svgCmd(flags *globalFlags) *cobra.Command {
	opts := &cli.LayoutOptions{}
	var output string
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Render the chart as an SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cleanup, err := setup(flags, false)
			if err != nil {
				return err
			}
			defer cleanup()

			if output == "" || output == "-" {
				return cli.SVGCommand(cmd.Context(), deps, *opts, deps.Stdout)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := cli.SVGCommand(cmd.Context(), deps, *opts, f); err != nil {
				f.Close()
				return err
			}
			deps.Logger.Info("wrote svg", "path", output)
			return f.Close()
		},
	}
	addLayoutFlags(cmd, opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func checkCmd(flags *globalFlags) *cobra.Command {
	opts := &cli.LayoutOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report data problems; exits non-zero if there are any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cleanup, err := setup(flags, false)
			if err != nil {
				return err
			}
			defer cleanup()
			return cli.CheckCommand(cmd.Context(), deps, *opts)
		},
	}
	addLayoutFlags(cmd, opts)
	return cmd
}

func daysCmd(flags *globalFlags) *cobra.Command {
	opts := &cli.WindowOptions{}
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "days",
		Short: "List the days of the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, cleanup, err := setup(flags, false)
			if err != nil {
				return err
			}
			defer cleanup()
			return cli.DaysCommand(deps, *opts, asJSON)
		},
	}
	addWindowFlags(cmd, opts)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
