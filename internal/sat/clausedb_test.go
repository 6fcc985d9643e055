package sat

import "testing"

func TestAddClauseTracksConstraints(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))

	if s.NumConstraints() != 1 {
		t.Fatalf("NumConstraints() = %d, want 1", s.NumConstraints())
	}
}

func TestLearnClauseEnqueuesAssertingLiteral(t *testing.T) {
	s := newTestSolver(3)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)))

	s.enqueue(NegativeLiteral(1), NoClauseRef)
	s.enqueue(NegativeLiteral(2), NoClauseRef)

	s.learnClause([]Literal{PositiveLiteral(0), NegativeLiteral(1)})

	if s.NumLearnts() != 1 {
		t.Fatalf("NumLearnts() = %d, want 1", s.NumLearnts())
	}
	if s.VarValue(0) != True {
		t.Errorf("VarValue(x0) = %v, want True (asserting literal enqueued)", s.VarValue(0))
	}
}

func TestBumpClauseActivityRescales(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	s.learnClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	ref := s.db.learnts[0]

	s.arena.Clause(ref).activity = 1.0000000000000002e20 // just above the 1e20 threshold
	incBefore := s.db.clauseInc

	s.bumpClauseActivity(ref)

	if s.db.clauseInc >= incBefore {
		t.Errorf("clauseInc should shrink after a rescale, got %v (was %v)", s.db.clauseInc, incBefore)
	}
	if s.arena.Clause(ref).activity > 1 {
		t.Errorf("activity should be rescaled down, got %v", s.arena.Clause(ref).activity)
	}
}

func TestReduceLearntsKeepsLockedClause(t *testing.T) {
	s := newTestSolver(6)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)))

	// A locked ternary learnt clause: antecedent of x3's assignment.
	s.enqueue(NegativeLiteral(4), NoClauseRef)
	s.enqueue(NegativeLiteral(5), NoClauseRef)
	s.learnClause([]Literal{PositiveLiteral(3), PositiveLiteral(4), PositiveLiteral(5)})
	locked := s.db.learnts[0]

	// A second, non-locked and non-binary (so not exempt) learnt clause.
	s.learnClause([]Literal{NegativeLiteral(3), PositiveLiteral(1), PositiveLiteral(2)})
	s.trail.reason[3] = locked // keep x3's real antecedent pinned to the first clause

	s.reduceLearnts()

	found := false
	for _, ref := range s.db.learnts {
		if ref == locked {
			found = true
		}
	}
	if !found {
		t.Error("locked learnt clause should survive reduction")
	}
}

func TestRemoveSatisfiedDropsLevel0Satisfied(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	s.enqueue(PositiveLiteral(0), NoClauseRef)

	s.opts.RemoveSatisfied = true
	s.simplifyLevel0()

	if s.NumConstraints() != 0 {
		t.Errorf("NumConstraints() = %d, want 0 (clause satisfied at level 0)", s.NumConstraints())
	}
}
