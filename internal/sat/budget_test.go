package sat

import "testing"

func TestBudgetUnlimitedNeverExceeded(t *testing.T) {
	b := &Budget{MaxConflicts: -1, MaxPropagations: -1, Timeout: -1}
	b.start()
	if b.exceeded(Stats{Conflicts: 1 << 30, Propagations: 1 << 30}) {
		t.Error("a fully unlimited budget should never be exceeded")
	}
}

func TestBudgetMaxConflicts(t *testing.T) {
	b := &Budget{MaxConflicts: 10, MaxPropagations: -1, Timeout: -1}
	b.start()
	if b.exceeded(Stats{Conflicts: 9}) {
		t.Error("budget should not be exceeded below the conflict cap")
	}
	if !b.exceeded(Stats{Conflicts: 10}) {
		t.Error("budget should be exceeded at the conflict cap")
	}
}

func TestBudgetMaxPropagations(t *testing.T) {
	b := &Budget{MaxConflicts: -1, MaxPropagations: 5, Timeout: -1}
	b.start()
	if !b.exceeded(Stats{Propagations: 5}) {
		t.Error("budget should be exceeded at the propagation cap")
	}
}
