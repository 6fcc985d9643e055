package sat

import "testing"

func TestNewSimplifierSeedsOccurrencesAndQueue(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))

	sp := newSimplifier(s)

	if sp.subQueue.Size() != 1 {
		t.Errorf("subQueue.Size() = %d, want 1", sp.subQueue.Size())
	}
	if got := len(sp.occ.occurrencesOf(s.arena, 0)); got != 1 {
		t.Errorf("occurrencesOf(x0) = %d, want 1", got)
	}
}

func TestSimplifierRunEliminatesAndSubsumes(t *testing.T) {
	s := newTestSolver(3)
	// x0 and x2 are frozen so that x1, which appears in both polarities, is
	// the only elimination candidate; after eliminating it, the resolvent
	// (x0 v x2) is the sole surviving clause.
	s.Freeze(0)
	s.Freeze(2)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	mustAddClause(t, s, lits(NegativeLiteral(1), PositiveLiteral(2)))

	sp := newSimplifier(s)
	sp.run(s.opts)

	if !s.eliminated[1] {
		t.Error("x1 should have been eliminated")
	}
	if s.NumConstraints() != 1 {
		t.Fatalf("NumConstraints() = %d, want 1", s.NumConstraints())
	}
}

func TestSimplifierRunSkipsFrozenVariables(t *testing.T) {
	s := newTestSolver(3)
	s.Freeze(1)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	mustAddClause(t, s, lits(NegativeLiteral(1), PositiveLiteral(2)))

	sp := newSimplifier(s)
	sp.run(s.opts)

	if s.eliminated[1] {
		t.Error("a frozen variable must never be eliminated")
	}
}

func TestPreprocessEndToEnd(t *testing.T) {
	s := newTestSolver(4)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	mustAddClause(t, s, lits(NegativeLiteral(1), PositiveLiteral(2)))
	mustAddClause(t, s, lits(NegativeLiteral(2), PositiveLiteral(3)))

	if !s.Preprocess() {
		t.Fatal("Preprocess() should not report unsat for a satisfiable instance")
	}
	if got := s.Solve(); got != True {
		t.Fatalf("Solve() after Preprocess = %v, want True", got)
	}

	model := s.Models[len(s.Models)-1]
	sat := func(cl []Literal) bool {
		for _, l := range cl {
			if l.IsPositive() == model[l.VarID()] {
				return true
			}
		}
		return false
	}
	clauses := [][]Literal{
		{PositiveLiteral(0), PositiveLiteral(1)},
		{NegativeLiteral(1), PositiveLiteral(2)},
		{NegativeLiteral(2), PositiveLiteral(3)},
	}
	for _, cl := range clauses {
		if !sat(cl) {
			t.Errorf("model %v does not satisfy original clause %v", model, cl)
		}
	}
}
