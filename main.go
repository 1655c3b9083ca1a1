package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arvidw/cdclsat/internal/dimacs"
	"github.com/arvidw/cdclsat/internal/driver"
	"github.com/arvidw/cdclsat/internal/sat"
)

var (
	flagSolvers []string
	flagRace    bool
	flagTimeout float64
	flagBatch   string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdclsat <cnf-file>",
		Short: "Solve a DIMACS CNF instance with a two-watched-literal CDCL/DPLL solver",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	cmd.Flags().StringArrayVar(&flagSolvers, "solver", []string{"cdcl_vsids_luby"}, "solver configuration to use (repeatable): dpll, cdcl_basic, cdcl_vsids, cdcl_vsids_luby")
	cmd.Flags().BoolVar(&flagRace, "race", false, "race every --solver configuration concurrently and report the first to finish")
	cmd.Flags().Float64Var(&flagTimeout, "timeout", 0, "wall-clock timeout in seconds (0 = no timeout; in --batch mode 0 means 30 seconds per instance)")
	cmd.Flags().StringVar(&flagBatch, "batch", "", "solve every .cnf/.cnf.gz file in this directory instead of a single file")
	cmd.Flags().StringVar(&flagLogPath, "log", "", "log file for --batch mode (refuses to overwrite an existing file)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug-level logging")

	return cmd
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func parseConfigs() ([]sat.Configuration, error) {
	configs := make([]sat.Configuration, 0, len(flagSolvers))
	for _, name := range flagSolvers {
		cfg, ok := sat.ParseConfiguration(name)
		if !ok {
			return nil, fmt.Errorf("unknown solver configuration %q", name)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger()

	configs, err := parseConfigs()
	if err != nil {
		return err
	}

	timeout := time.Duration(flagTimeout * float64(time.Second))

	if flagBatch != "" {
		if flagLogPath == "" {
			return fmt.Errorf("--batch requires --log")
		}
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		return driver.RunBatch(log, flagBatch, flagLogPath, configs, sat.DefaultOptions, timeout)
	}

	if len(args) != 1 {
		return fmt.Errorf("missing <cnf-file>")
	}

	return solveOneFile(cmd, log, args[0], configs, timeout)
}

func solveOneFile(cmd *cobra.Command, log *logrus.Logger, path string, configs []sat.Configuration, timeout time.Duration) error {
	inst, err := dimacs.ParseFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	log.WithFields(logrus.Fields{"variables": inst.Variables, "clauses": len(inst.Clauses)}).Info("parsed instance")

	p := sat.Problem{NumVars: inst.Variables, Clauses: inst.Clauses}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	var res sat.Result
	if flagRace || len(configs) > 1 {
		res = driver.Race(ctx, log, p, configs, sat.DefaultOptions)
	} else {
		cfg := sat.ConfigCDCLVSIDSLuby
		if len(configs) == 1 {
			cfg = configs[0]
		}
		res = sat.Solve(ctx, p, cfg, sat.DefaultOptions)
	}
	elapsed := time.Since(start)

	if res.Status == sat.StatusUnknown {
		line, _ := driver.PlaceholderRecord(path).Line()
		cmd.OutOrStdout().Write(line)
		return fmt.Errorf("timed out after %s", elapsed)
	}

	record := driver.NewRecord(path, res, elapsed)
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
