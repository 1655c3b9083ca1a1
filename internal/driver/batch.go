package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arvidw/cdclsat/internal/dimacs"
	"github.com/arvidw/cdclsat/internal/sat"
)

// RunBatch solves every .cnf/.cnf.gz file under dir (one at a time, not
// concurrently — each gets the full per-instance timeout) and appends one
// JSON line per instance to logPath. It refuses to overwrite an existing
// log file.
func RunBatch(log *logrus.Logger, dir, logPath string, configs []sat.Configuration, opts sat.Options, timeout time.Duration) error {
	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("driver: opening log file: %w", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("driver: reading instance directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".cnf") || strings.HasSuffix(e.Name(), ".cnf.gz") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		record := solveOne(log, path, configs, opts, timeout)

		line, err := record.Line()
		if err != nil {
			return fmt.Errorf("driver: formatting result for %s: %w", path, err)
		}
		if _, err := f.Write(line); err != nil {
			return fmt.Errorf("driver: writing result for %s: %w", path, err)
		}
	}

	return nil
}

func solveOne(log *logrus.Logger, path string, configs []sat.Configuration, opts sat.Options, timeout time.Duration) Record {
	inst, err := dimacs.ParseFile(path)
	if err != nil {
		if log != nil {
			log.WithError(err).WithField("instance", path).Warn("parse failed")
		}
		return PlaceholderRecord(path)
	}

	p := sat.Problem{NumVars: inst.Variables, Clauses: inst.Clauses}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	var res sat.Result
	if len(configs) > 1 {
		res = Race(ctx, log, p, configs, opts)
	} else {
		cfg := sat.ConfigCDCLVSIDSLuby
		if len(configs) == 1 {
			cfg = configs[0]
		}
		res = sat.Solve(ctx, p, cfg, opts)
	}
	elapsed := time.Since(start)

	if res.Status == sat.StatusUnknown {
		return PlaceholderRecord(path)
	}
	return NewRecord(path, res, elapsed)
}
