package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fabricattachedmemory/memreserve/memutils/reserve"
	"github.com/fabricattachedmemory/memreserve/report"
	"github.com/fabricattachedmemory/memreserve/topology"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

type options struct {
	show      bool
	reserve   sizeFlag
	bookSize  sizeFlag
	sysfsRoot string
	jsonOut   bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mem-reserve",
		Short: "Compute memory reservation parameters",
		Long: `mem-reserve compares the firmware memory map with the memory the kernel
has online and computes memmap= boot parameters that keep a given amount of
RAM, taken from the highest addresses, away from the kernel.

Sizes are an integer followed by an optional unit: B, K, M, G, T or P
(powers of 1024, case-insensitive).

Example:
  mem-reserve --show
  mem-reserve --reserve 64G --bsize 8G`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.show && !opts.reserve.set {
				return cmd.Help()
			}
			if opts.bookSize.set && !opts.reserve.set {
				return errors.New("--bsize requires --reserve")
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.show, "show", false, "Print the firmware, system and reserve memory maps")
	flags.Var(&opts.reserve, "reserve", "Reserve SIZE bytes of firmware memory from the highest addresses")
	flags.Var(&opts.bookSize, "bsize", "Report how many books of SIZE bytes fit in the reservation")
	flags.StringVar(&opts.sysfsRoot, "sysfs", topology.DefaultRoot, "Path where sysfs is mounted")
	flags.BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(w))
}

func run(stdout, stderr io.Writer, opts *options) error {
	logger := newLogger(stderr, opts.verbose)

	snapshot, err := topology.Load(logger, os.DirFS(opts.sysfsRoot))
	if err != nil {
		return errors.Wrapf(err, "reading memory topology from %s", opts.sysfsRoot)
	}

	views := report.Compute(snapshot)

	var result *reserve.Result
	if opts.reserve.set {
		planner := reserve.New(logger, reserve.Options{BlockSize: views.BlockSize})
		plan := planner.Plan(views.Firmware, opts.reserve.size.Bytes())
		result = &plan
	}

	if opts.jsonOut {
		return report.WriteJSON(stdout, views, result, opts.bookSize.size.Bytes())
	}

	if opts.show {
		if err := report.WriteShow(stdout, views); err != nil {
			return err
		}
		if result != nil {
			post := report.PostReservationMap(views.Firmware, result.Ranges)
			if err := report.WriteMap(stdout, "Post-reservation", post); err != nil {
				return err
			}
		}
	}

	if result != nil {
		return report.WriteReservation(stdout, *result, opts.bookSize.size.Bytes())
	}

	return nil
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
