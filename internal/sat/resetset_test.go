package sat

import "testing"

func TestResetSetAddAndContains(t *testing.T) {
	rs := &ResetSet{}
	for i := 0; i < 4; i++ {
		rs.Expand()
	}
	rs.Clear() // bump off the zero-value timestamp before any real use

	rs.Add(1)
	rs.Add(3)

	for i, want := range []bool{false, true, false, true} {
		if got := rs.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestResetSetClearEmptiesSet(t *testing.T) {
	rs := &ResetSet{}
	for i := 0; i < 3; i++ {
		rs.Expand()
	}
	rs.Clear()

	rs.Add(0)
	rs.Add(1)
	rs.Add(2)

	rs.Clear()

	for i := 0; i < 3; i++ {
		if rs.Contains(i) {
			t.Errorf("Contains(%d) = true right after Clear(), want false", i)
		}
	}
}

func TestResetSetExpandPreservesExisting(t *testing.T) {
	rs := &ResetSet{}
	rs.Expand()
	rs.Clear()
	rs.Add(0)

	rs.Expand()

	if !rs.Contains(0) {
		t.Error("Expand() should not disturb an already-added element")
	}
	if rs.Contains(1) {
		t.Error("a newly expanded slot should not already be in the set")
	}
}
