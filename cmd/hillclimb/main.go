// Command hillclimb answers both questions for a climbing height-map:
//
//	Q1: the fewest steps from 'S' to 'E';
//	Q2: the fewest steps from any 'a' cell to 'E'.
//
// Usage:
//
//	hillclimb [-config hillclimb.yaml] [-input input.txt] [-strategy brute-force|reverse]
//	          [-workers N] [-log-level warn] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/elevation"
	"github.com/katalvlaran/hillclimb/hiking"
	"github.com/katalvlaran/hillclimb/internal/config"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}

// exitCode maps the result of run to a process status. A help request is
// not a failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintln(stderr, "hillclimb:", err)
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "optional YAML configuration file")
		input      = fs.String("input", "", "puzzle input file (default input.txt)")
		strategy   = fs.String("strategy", "", "Q2 strategy: brute-force or reverse")
		workers    = fs.Int("workers", 0, "concurrent searches for the brute-force strategy")
		logLevel   = fs.String("log-level", "", "log level (panic..trace)")
		verbose    = fs.Bool("v", false, "print the Q1 path")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath, ".env")
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "strategy":
			cfg.Strategy = *strategy
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = *logLevel
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.Level())

	return solve(cfg, log, stdout)
}

func solve(cfg config.Config, log *logrus.Logger, stdout io.Writer) error {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	log.WithField("file", cfg.Input).Info("loading")
	grid, err := elevation.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	log.WithFields(logrus.Fields{
		"rows":  grid.Rows(),
		"cells": grid.Len(),
		"start": grid.Start().String(),
		"end":   grid.End().String(),
	}).Debug("grid loaded")

	var finalized int
	shortest, err := dijkstra.ShortestPath(grid, grid.Start(),
		dijkstra.WithOnFinalize(func(elevation.Coordinate, int64) { finalized++ }))
	if err != nil {
		return err
	}
	log.WithField("finalized", finalized).Debugf("solved %s to %s", grid.Start(), grid.End())
	if shortest.Empty() {
		fmt.Fprintln(stdout, "Q1: no path from S to E")
	} else {
		fmt.Fprintf(stdout, "Q1: number of steps to target: %d\n", shortest.Steps())
		if cfg.Verbose {
			fmt.Fprintln(stdout, shortest)
		}
	}

	trail, err := hiking.BestPath(grid,
		hiking.WithStrategy(cfg.HikingStrategy()),
		hiking.WithWorkers(cfg.Workers),
		hiking.WithLogger(log),
	)
	if err != nil {
		return err
	}
	if trail.Empty() {
		fmt.Fprintln(stdout, "Q2: no hiking route reaches E")
	} else {
		fmt.Fprintf(stdout, "Q2: best hiking route is %d steps\n", trail.Steps())
	}
	return nil
}
