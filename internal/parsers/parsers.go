// Package parsers adapts the DIMACS CNF and model text formats to and from
// the sat package, the way the teacher's own parsers package wraps
// github.com/rhartert/dimacs's line-oriented reader over a SATSolver.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/gosat/cdcl/internal/sat"
)

// SATSolver is the subset of *sat.Solver a DIMACS load needs.
type SATSolver interface {
	AddVariable() sat.Variable
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses the DIMACS CNF file at filename into solver. When strict
// is set, the problem line's declared variable and clause counts are
// enforced exactly: a literal naming a variable beyond the declared count,
// or a clause count that doesn't match what the file actually contains, is
// reported as an error instead of silently tolerated.
func LoadDIMACS(filename string, gzipped bool, strict bool, solver SATSolver) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{solver: solver, strict: strict, declaredVars: -1, declaredClauses: -1}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return err
	}
	if strict && b.declaredClauses >= 0 && b.seenClauses != b.declaredClauses {
		return fmt.Errorf("strict mode: problem line declared %d clauses, file contains %d", b.declaredClauses, b.seenClauses)
	}
	return nil
}

// builder wraps the solver to implement dimacs.Builder.
type builder struct {
	solver SATSolver
	strict bool

	declaredVars    int
	declaredClauses int
	seenClauses     int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem: %q", problem)
	}
	b.declaredVars = nVars
	b.declaredClauses = nClauses
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	b.seenClauses++
	if b.strict && b.declaredClauses >= 0 && b.seenClauses > b.declaredClauses {
		return fmt.Errorf("strict mode: more clauses than the %d declared", b.declaredClauses)
	}

	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		v := l
		if v < 0 {
			v = -v
		}
		if b.strict && b.declaredVars >= 0 && v > b.declaredVars {
			return fmt.Errorf("strict mode: variable %d exceeds the %d declared", v, b.declaredVars)
		}
		if !b.strict && v > b.declaredVars {
			for b.declaredVars = max(b.declaredVars, 0); b.declaredVars < v; b.declaredVars++ {
				b.solver.AddVariable()
			}
		}
		if l < 0 {
			clause[i] = sat.NegativeLiteral(sat.Variable(-l - 1))
		} else {
			clause[i] = sat.PositiveLiteral(sat.Variable(l - 1))
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// file, one per line of space-separated signed integers ending in 0.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
