package sat

import "testing"

func TestWatchAndPropagateUnit(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(NegativeLiteral(0), PositiveLiteral(1)))

	s.enqueue(PositiveLiteral(0), NoClauseRef)

	if confl := s.propagate(); confl != NoClauseRef {
		t.Fatalf("propagate() reported a spurious conflict: %v", confl)
	}
	if s.VarValue(1) != True {
		t.Errorf("VarValue(x1) = %v, want True", s.VarValue(1))
	}
}

func TestPropagateDetectsConflict(t *testing.T) {
	s := newTestSolver(2)
	mustAddClause(t, s, lits(NegativeLiteral(0), PositiveLiteral(1)))

	s.enqueue(PositiveLiteral(0), NoClauseRef)
	s.enqueue(NegativeLiteral(1), NoClauseRef)

	if confl := s.propagate(); confl == NoClauseRef {
		t.Fatal("propagate() did not detect the conflict")
	}
}

// TestPropagateMultipleWatchersOnSameLiteral exercises the code path that
// once had an aliasing bug: several clauses all watching the same literal
// must each see their watch correctly moved or re-affirmed when that
// literal is dequeued, none silently dropped from the watch list.
func TestPropagateMultipleWatchersOnSameLiteral(t *testing.T) {
	s := newTestSolver(5)
	// All three clauses watch !x0 (via their x0 literal); once x0 becomes
	// false, each has become unit and must propagate its other literal.
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(1)))
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(2)))
	mustAddClause(t, s, lits(PositiveLiteral(0), PositiveLiteral(3)))

	s.enqueue(NegativeLiteral(0), NoClauseRef)

	if confl := s.propagate(); confl != NoClauseRef {
		t.Fatalf("propagate() reported a spurious conflict: %v", confl)
	}
	for v := Variable(1); v <= 3; v++ {
		if s.VarValue(v) != True {
			t.Errorf("VarValue(x%d) = %v, want True (unit propagated)", v, s.VarValue(v))
		}
	}
}
