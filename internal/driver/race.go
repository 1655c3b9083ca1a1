package driver

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/arvidw/cdclsat/internal/sat"
)

// Race runs one Solver per configuration concurrently over the same
// problem, each against its own private copy so no state is shared between
// racers, and returns the first Sat or Unsat result to arrive (a StatusUnknown
// result when every racer ends without one). The losing racers are
// cancelled via context and their goroutines are allowed to drain in the
// background; Race does not wait for them.
func Race(ctx context.Context, log *logrus.Logger, p sat.Problem, configs []sat.Configuration, opts sat.Options) sat.Result {
	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if log != nil {
		log.WithField("configs", sortConfigs(configs)).Debug("starting race")
	}

	results := make(chan sat.Result, len(configs))
	var wg sync.WaitGroup
	for _, cfg := range configs {
		wg.Add(1)
		go func(cfg sat.Configuration) {
			defer wg.Done()
			results <- sat.Solve(raceCtx, deepCopyProblem(p), cfg, opts)
		}(cfg)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var winner sat.Result
	got := false
	for res := range results {
		if res.Status == sat.StatusUnknown {
			continue // this racer was cancelled before finishing, not a real answer
		}
		winner = res
		got = true
		cancel()
		break
	}
	if !got {
		winner = sat.Result{Status: sat.StatusUnknown}
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"winner":    winner.Solver.String(),
			"status":    winner.Status.String(),
			"conflicts": winner.Stats.Conflicts,
		}).Info("race finished")
	}

	return winner
}

// deepCopyProblem clones p so concurrent racers never share backing arrays,
// per the "no inter-instance sharing" rule.
func deepCopyProblem(p sat.Problem) sat.Problem {
	clauses := make([][]int, len(p.Clauses))
	for i, c := range p.Clauses {
		clauses[i] = append([]int(nil), c...)
	}
	return sat.Problem{NumVars: p.NumVars, Clauses: clauses}
}
