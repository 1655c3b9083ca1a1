// Package dimacsx wraps github.com/rhartert/dimacs's streaming Builder
// interface for the DIMACS-shaped files the core parser in internal/dimacs
// was not built for: reference model files produced by other solvers, used
// to cross-check a solve's result against a known-good answer.
package dimacsx

import (
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
)

// modelBuilder implements dimacs.Builder, collecting each clause line of a
// model file as one total assignment (one model per line, one literal per
// variable, no 0 problem line).
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars, nClauses int) error {
	return fmt.Errorf("dimacsx: model files must not contain a problem line, found %q", problem)
}

func (b *modelBuilder) Comment(string) error { return nil }

func (b *modelBuilder) Clause(lits []int) error {
	model := make([]bool, len(lits))
	for i, l := range lits {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ReadModels parses r as a sequence of reference models, one per line.
func ReadModels(r io.Reader) ([][]bool, error) {
	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// ReadModelsFile opens path and parses it with ReadModels.
func ReadModelsFile(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadModels(f)
}

// problemBuilder implements dimacs.Builder over the library's own streaming
// parse, offered as an alternative entry point to internal/dimacs's
// hand-rolled one for CNF files that came from tooling emitting the strict
// single-clause-per-Clause()-call shape the library expects.
type problemBuilder struct {
	nVars   int
	clauses [][]int
}

func (b *problemBuilder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacsx: unsupported problem type %q", problem)
	}
	b.nVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *problemBuilder) Comment(string) error { return nil }

func (b *problemBuilder) Clause(lits []int) error {
	clause := make([]int, len(lits))
	copy(clause, lits)
	b.clauses = append(b.clauses, clause)
	return nil
}

// ProblemLiterals parses r with the library's streaming builder and returns
// the raw variable count and clauses, in the same shape sat.Problem expects.
func ProblemLiterals(r io.Reader) (nVars int, clauses [][]int, err error) {
	b := &problemBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return 0, nil, err
	}
	return b.nVars, b.clauses, nil
}
