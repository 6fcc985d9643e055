package sat

import "testing"

func TestVarOrderPickBranchVariable(t *testing.T) {
	s := newTestSolver(3)

	v, ok := s.pickBranchVariable()
	if !ok {
		t.Fatal("pickBranchVariable() should find a candidate among 3 fresh variables")
	}
	_ = v

	for i := 0; i < 3; i++ {
		s.enqueue(PositiveLiteral(Variable(i)), NoClauseRef)
	}
	if _, ok := s.pickBranchVariable(); ok {
		t.Error("pickBranchVariable() should report none left once all variables are assigned")
	}
}

func TestVarOrderBumpScoreReordersHeap(t *testing.T) {
	s := newTestSolver(2)
	s.order.bumpScore(0)
	s.order.bumpScore(0)
	s.order.bumpScore(1)

	v, ok := s.pickBranchVariable()
	if !ok || v != 0 {
		t.Errorf("pickBranchVariable() = (%d, %v), want (0, true) since x0 has the higher activity", v, ok)
	}
}

func TestVarOrderPickPolaritySavedPhase(t *testing.T) {
	s := newTestSolver(1)
	s.opts.RandomVarFreq = 0
	s.order.randomVarFreq = 0
	s.order.phaseSaving = true
	s.order.phases[0] = False

	l := s.pickPolarity(0)
	if l.IsPositive() {
		t.Errorf("pickPolarity() = %v, want the saved False phase", l)
	}
}

func TestVarOrderReinsertAfterCancel(t *testing.T) {
	s := newTestSolver(1)
	s.assume(PositiveLiteral(0))
	s.cancelUntil(0)

	if _, ok := s.pickBranchVariable(); !ok {
		t.Error("x0 should be reinserted into the decision heap after cancelUntil")
	}
}
